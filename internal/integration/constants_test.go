package integration_test

const (
	TestAccountId      = 42
	TestOtherAccountId = 43
)

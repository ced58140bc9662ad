package contract

import "errors"

var (
	ErrContractNotFound = errors.New("contract not found")
	ErrEmployeeNotFound = errors.New("referenced employee does not exist")
)

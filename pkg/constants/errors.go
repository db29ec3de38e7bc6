// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "errors"

var (
	ErrEmptyProgramID    = errors.New("program id must not be empty")
	ErrEmptyRPCEndpoint  = errors.New("rpc endpoint must not be empty")
	ErrNoValidators      = errors.New("validator list must not be empty")
	ErrTooManyValidators = errors.New("validator list exceeds on-chain capacity")
	ErrInvalidQuorum     = errors.New("quorum out of range")
	ErrInvalidMinJurors  = errors.New("min jurors out of range")
)

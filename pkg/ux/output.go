// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"fmt"
	"io"

	"github.com/solsafe/cli/pkg/utils"
	"go.uber.org/zap"
)

type UserLog struct {
	log    *zap.Logger
	writer io.Writer
}

// New builds the user facing output. User output goes to userwriter, logs
// go wherever log writes (stderr for the CLI).
func New(log *zap.Logger, userwriter io.Writer) *UserLog {
	if log == nil {
		log = zap.NewNop()
	}
	return &UserLog{
		log:    log,
		writer: userwriter,
	}
}

// PrintToUser prints msg directly to the user writer (command output).
// Does NOT log, logs go to stderr separately.
func (ul *UserLog) PrintToUser(msg string, args ...interface{}) error {
	_, err := fmt.Fprintln(ul.writer, fmt.Sprintf(msg, args...))
	return err
}

// PrintJSON prints v as JSON indented by two spaces
func (ul *UserLog) PrintJSON(v interface{}) error {
	b, err := utils.MarshalIndent(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ul.writer, string(b))
	return err
}

// Info logs an info message
func (ul *UserLog) Info(msg string, args ...interface{}) {
	ul.log.Info(fmt.Sprintf(msg, args...))
}

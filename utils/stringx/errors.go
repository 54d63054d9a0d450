// File: errors.go
// Title: Error Sentinels
// Description: Sentinel errors for errors.Is matching. Every error returned
//              by this package is a *mdwerror.Error, and *mdwerror.Error
//              matches a sentinel by code.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.2.0: Initial implementation

package stringx

import (
	mdwerror "github.com/msto63/textx/core/error"
)

var (
	ErrNullInput                   = mdwerror.New("stringx: null input").WithCode(mdwerror.CodeNullInput)
	ErrInvalidEnumValue            = mdwerror.New("stringx: invalid enum value").WithCode(mdwerror.CodeInvalidEnumValue)
	ErrEmptyCollection             = mdwerror.New("stringx: empty collection").WithCode(mdwerror.CodeEmptyCollection)
	ErrNullOrEmptyMember           = mdwerror.New("stringx: null or empty collection member").WithCode(mdwerror.CodeNullOrEmptyMember)
	ErrMarkerNotFound              = mdwerror.New("stringx: marker not found").WithCode(mdwerror.CodeMarkerNotFound)
	ErrEndMarkerNotFoundAfterStart = mdwerror.New("stringx: end marker not found after start marker").WithCode(mdwerror.CodeEndMarkerNotFoundAfterStart)
	ErrNegativeLength              = mdwerror.New("stringx: negative length").WithCode(mdwerror.CodeNegativeLength)
	ErrLengthOutOfRange            = mdwerror.New("stringx: length out of range").WithCode(mdwerror.CodeLengthOutOfRange)
)

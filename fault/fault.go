// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlgorithmMissing        = NotFoundError("digest algorithm is not available")
	ErrAlgorithmSizeMismatch   = LengthError("digest algorithm returned wrong length")
	ErrAlreadyInitialised      = ExistsError("already initialised")
	ErrAlreadyStarted          = ExistsError("already started")
	ErrConfigurationInvalidDir = InvalidError("data directory is invalid")
	ErrConfigurationNotLoaded  = NotFoundError("configuration is not loaded")
	ErrFileDoesNotExist        = NotFoundError("file does not exist")
	ErrInvalidAlgorithmIndex   = InvalidError("invalid algorithm index")
	ErrInvalidCount            = InvalidError("invalid count")
	ErrInvalidDifficulty       = InvalidError("invalid difficulty")
	ErrInvalidHeader           = InvalidError("invalid header")
	ErrInvalidLoggerChannel    = InvalidError("invalid logger channel")
	ErrInvalidNonce            = InvalidError("invalid nonce")
	ErrInvalidRound            = InvalidError("invalid round")
	ErrInvalidThreadCount      = InvalidError("invalid thread count")
	ErrMissingMiningHeader     = NotFoundError("mining header is required")
	ErrNoCachedHeader          = NotFoundError("no cached header")
	ErrNotADirectory           = InvalidError("path is not a directory")
	ErrNotAPlainFilename       = InvalidError("file name must not contain a path")
	ErrNotStarted              = NotFoundError("not started")
	ErrWrongDigestLength       = LengthError("wrong digest length")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
)

// delay before the final panic so the log file can be written
const panicDelay = 100 * time.Millisecond

var globalData struct {
	sync.Mutex
	log *logger.L
}

// Initialise - setup a log channel for last attempt to log something
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if nil != globalData.log {
		return ErrAlreadyInitialised
	}
	globalData.log = logger.New("PANIC")
	if nil == globalData.log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and detach from the logger
func Finalise() {
	globalData.Lock()
	defer globalData.Unlock()

	if nil != globalData.log {
		globalData.log.Flush()
		globalData.log = nil
	}
}

// Criticalf - log a formatted string with arguments like fmt.Sprintf()
func Criticalf(format string, arguments ...interface{}) {
	f, a := withCaller(format, arguments)
	internalCriticalf(f, a...)
}

// Panicf - log the formatted message then panic with it
//
// used only for conditions that indicate an implementation defect
func Panicf(format string, arguments ...interface{}) {
	f, a := withCaller(format, arguments)
	internalCriticalf(f, a...)
	message := fmt.Sprintf(format, arguments...)
	if nil != globalData.log {
		time.Sleep(panicDelay)
	}
	panic(message)
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	Panicf("%s failed with error: %s", message, err)
}

// prefix file:line of the caller's caller
func withCaller(format string, arguments []interface{}) (string, []interface{}) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return format, arguments
	}
	a := make([]interface{}, 2, 2+len(arguments))
	a[0] = file
	a[1] = line
	a = append(a, arguments...)
	return "(%q:%d) " + format, a
}

// internal routine to handle an uninitialised logger channel
func internalCriticalf(format string, arguments ...interface{}) {
	globalData.Lock()
	log := globalData.log
	globalData.Unlock()

	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	log.Criticalf(format, arguments...)
	log.Flush()
}

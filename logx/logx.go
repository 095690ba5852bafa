/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package logx renders errcode error objects as structured logrus fields.
package logx

import (
	"errors"

	"github.com/sirupsen/logrus"

	"dirpx.dev/errcode/apis"
)

// Fields flattens an error into logrus fields. It recognizes the errcode
// contracts anywhere in the wrap chain: kind and installed code are
// reported when present, and the direct cause is rendered as its message.
// A plain error yields only the "error" field.
func Fields(err error) logrus.Fields {
	f := logrus.Fields{}
	if err == nil {
		return f
	}
	f["error"] = err.Error()

	var kinded apis.Kinded
	if errors.As(err, &kinded) {
		f["kind"] = kinded.ErrorKind()
	}

	var coded apis.Coded
	if errors.As(err, &coded) {
		if v, ok := coded.ErrorCode(); ok {
			f["code"] = v
		}
	}

	if cause := errors.Unwrap(err); cause != nil {
		f["cause"] = cause.Error()
	}
	return f
}

// WithError returns a logger entry annotated with the error's fields.
func WithError(logger *logrus.Logger, err error) *logrus.Entry {
	return logger.WithFields(Fields(err))
}

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package output

import (
	"encoding/json"
	"io"
)

// JsonFormatter emits the object as two-space indented JSON with a trailing
// newline. Formatting options are ignored.
type JsonFormatter struct {
}

func (f *JsonFormatter) Kind() Format {
	return JsonFormat
}

func (f *JsonFormatter) Format(obj any, writer io.Writer, _ any) error {
	encoded, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return err
	}

	_, err = writer.Write(append(encoded, '\n'))
	return err
}

var _ Formatter = (*JsonFormatter)(nil)

// © 2026 The tsgram Authors
//
// SPDX-License-Identifier: Apache-2.0

package fs

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/tsgram/tsgram/internal/exc"
	"github.com/tsgram/tsgram/internal/source"
)

func bodyFromIO(v io.ReadCloser) source.FileBody {
	return &ioFileBody{rc: v}
}

type ioFileBody struct {
	rc io.ReadCloser
	b  []byte
}

func (self *ioFileBody) Read(ctx context.Context, size int32) ([]byte, error) {
	if len(self.b) < int(size) {
		self.b = make([]byte, size)
	}
	count, err := self.rc.Read(self.b[:size])
	if err != nil && err != io.EOF {
		return nil, exc.WrapUnknown(exc.Location{}, err)
	}
	if err == io.EOF {
		return self.b[:count], exc.Wrap(exc.Location{}, exc.CodeEOF, err)
	}
	return self.b[:count], nil
}

func (self *ioFileBody) Close(ctx context.Context) error {
	return self.rc.Close()
}

// ReadAll drains a file body. The lexer works on the complete source so
// bodies are read in fixed size chunks until EOF.
func ReadAll(ctx context.Context, f source.File) ([]byte, error) {
	body, err := f.Body(ctx)
	if err != nil {
		return nil, err
	}
	defer body.Close(ctx)
	var buf bytes.Buffer
	for {
		chunk, err := body.Read(ctx, readChunkSize)
		buf.Write(chunk)
		if err != nil {
			var e exc.Exception
			if errors.As(err, &e) && e.Code() == exc.CodeEOF {
				return buf.Bytes(), nil
			}
			return nil, exc.WrapUnknown(exc.Location{URI: f.Path(ctx)}, err)
		}
		if len(chunk) == 0 {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
		}
	}
}

const readChunkSize = 32 * 1024

// Copyright 2019 Radiation Detection and Imaging (RDI), LLC
// Use of this source code is governed by the BSD 3-clause
// license that can be found in the LICENSE file.

package data

import (
	"bytes"
	"context"
	"io/ioutil"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

func gcsOptions(credentials []byte) []option.ClientOption {
	if len(credentials) == 0 {
		return nil
	}
	return []option.ClientOption{option.WithCredentialsJSON(credentials)}
}

// ReadGcsObject downloads a whole object. ROOT files need random access, so
// they are held in memory rather than streamed.
func ReadGcsObject(ctx context.Context, bucket, name string, credentials []byte) ([]byte, error) {
	client, err := storage.NewClient(ctx, gcsOptions(credentials)...)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	objectReader, err := client.Bucket(bucket).Object(name).NewReader(ctx)
	if err != nil {
		return nil, err
	}
	defer objectReader.Close()

	return ioutil.ReadAll(objectReader)
}

func CreateGcsStore(ctx context.Context, bucket, name string, credentials []byte) (*RootStore, error) {
	buf, err := ReadGcsObject(ctx, bucket, name, credentials)
	if err != nil {
		return nil, err
	}
	return NewRootStore(memFile{bytes.NewReader(buf)}, "gs://"+bucket+"/"+name)
}

// memFile lets an in-memory object stand in for an opened file.
type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FileInfo describes a file stored in the GridFS bucket.
type FileInfo struct {
	ID          string
	Filename    string
	Length      int64
	ContentType string
	UploadedAt  time.Time
}

// FileStore is the GridFS-backed implementation of FileStoreIface.
type FileStore struct {
	bucket *gridfs.Bucket
}

func NewFileStore(bucket *gridfs.Bucket) *FileStore {
	return &FileStore{bucket: bucket}
}

// Upload stores the contents of r under filename and returns the stored
// file's metadata. The content type is recorded in the GridFS metadata
// document.
func (s *FileStore) Upload(ctx context.Context, filename, contentType string, r io.Reader) (*FileInfo, error) {
	opts := options.GridFSUpload()
	if contentType != "" {
		opts.SetMetadata(bson.M{"contentType": contentType})
	}

	oid, err := s.bucket.UploadFromStream(filename, r, opts)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", filename, err)
	}
	return s.Stat(ctx, oid.Hex())
}

// Download copies the file matching id into w and returns its metadata, or
// ErrNotFound.
func (s *FileStore) Download(ctx context.Context, id string, w io.Writer) (*FileInfo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	stream, err := s.bucket.OpenDownloadStream(oid)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	defer stream.Close()

	info := fileInfoFrom(stream.GetFile())
	if _, err := io.Copy(w, stream); err != nil {
		return nil, fmt.Errorf("stream file %s: %w", id, err)
	}
	return info, nil
}

// Stat returns the metadata of the file matching id, or ErrNotFound.
func (s *FileStore) Stat(ctx context.Context, id string) (*FileInfo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	cur, err := s.bucket.FindContext(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	if !cur.Next(ctx) {
		if err := cur.Err(); err != nil {
			return nil, err
		}
		return nil, ErrNotFound
	}

	var f gridfs.File
	if err := cur.Decode(&f); err != nil {
		return nil, err
	}
	return fileInfoFrom(&f), nil
}

// Delete removes the file matching id and all of its chunks, or returns
// ErrNotFound.
func (s *FileStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	if err := s.bucket.DeleteContext(ctx, oid); err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// List returns up to limit files ordered by upload time, newest first.
func (s *FileStore) List(ctx context.Context, limit int) ([]*FileInfo, error) {
	cur, err := s.bucket.FindContext(ctx, bson.M{},
		options.GridFSFind().
			SetSort(bson.D{{Key: "uploadDate", Value: -1}}).
			SetLimit(int32(limit)),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var files []*FileInfo
	for cur.Next(ctx) {
		var f gridfs.File
		if err := cur.Decode(&f); err != nil {
			return nil, err
		}
		files = append(files, fileInfoFrom(&f))
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return files, nil
}

func fileInfoFrom(f *gridfs.File) *FileInfo {
	info := &FileInfo{
		Filename:   f.Name,
		Length:     f.Length,
		UploadedAt: f.UploadDate,
	}
	if oid, ok := f.ID.(primitive.ObjectID); ok {
		info.ID = oid.Hex()
	}
	if f.Metadata != nil {
		var meta struct {
			ContentType string `bson:"contentType"`
		}
		if err := bson.Unmarshal(f.Metadata, &meta); err == nil {
			info.ContentType = meta.ContentType
		}
	}
	return info
}

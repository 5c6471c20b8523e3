package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
)

type fakeAPI struct {
	objects map[string][]byte
	types   map[string]string
	pingErr error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeAPI) PutObject(ctx context.Context, params *awss3.PutObjectInput, _ ...func(*awss3.Options)) (*awss3.PutObjectOutput, error) {
	data, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.objects[*params.Key] = data
	if params.ContentType != nil {
		f.types[*params.Key] = *params.ContentType
	}
	return &awss3.PutObjectOutput{}, nil
}

func (f *fakeAPI) GetObject(ctx context.Context, params *awss3.GetObjectInput, _ ...func(*awss3.Options)) (*awss3.GetObjectOutput, error) {
	data, ok := f.objects[*params.Key]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	out := &awss3.GetObjectOutput{
		Body:          io.NopCloser(bytes.NewReader(data)),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if ct, ok := f.types[*params.Key]; ok {
		out.ContentType = aws.String(ct)
	}
	return out, nil
}

func (f *fakeAPI) DeleteObject(ctx context.Context, params *awss3.DeleteObjectInput, _ ...func(*awss3.Options)) (*awss3.DeleteObjectOutput, error) {
	delete(f.objects, *params.Key)
	return &awss3.DeleteObjectOutput{}, nil
}

func (f *fakeAPI) HeadBucket(ctx context.Context, params *awss3.HeadBucketInput, _ ...func(*awss3.Options)) (*awss3.HeadBucketOutput, error) {
	if f.pingErr != nil {
		return nil, f.pingErr
	}
	return &awss3.HeadBucketOutput{}, nil
}

func TestUploadDownloadRoundTrip(t *testing.T) {
	fake := newFakeAPI()
	client := &Client{api: fake, bucket: "attachments"}
	ctx := context.Background()

	payload := []byte("jpeg bytes here")
	if err := client.Upload(ctx, "photos/abc", "image/jpeg", bytes.NewReader(payload), int64(len(payload))); err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	obj, err := client.Download(ctx, "photos/abc")
	if err != nil {
		t.Fatalf("download failed: %v", err)
	}
	defer obj.Body.Close()

	got, err := io.ReadAll(obj.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("unexpected payload: %q", got)
	}
	if obj.ContentType != "image/jpeg" {
		t.Fatalf("unexpected content type %q", obj.ContentType)
	}
	if obj.SizeBytes != int64(len(payload)) {
		t.Fatalf("unexpected size %d", obj.SizeBytes)
	}
}

func TestDownloadMissingObject(t *testing.T) {
	client := &Client{api: newFakeAPI(), bucket: "attachments"}
	if _, err := client.Download(context.Background(), "missing"); err == nil {
		t.Fatalf("expected error for missing object")
	}
}

func TestDeleteRemovesObject(t *testing.T) {
	fake := newFakeAPI()
	client := &Client{api: fake, bucket: "attachments"}
	ctx := context.Background()

	if err := client.Upload(ctx, "sig/1", "image/png", bytes.NewReader([]byte("x")), 1); err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if err := client.Delete(ctx, "sig/1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := client.Download(ctx, "sig/1"); err == nil {
		t.Fatalf("expected object gone after delete")
	}
}

func TestPing(t *testing.T) {
	fake := newFakeAPI()
	client := &Client{api: fake, bucket: "attachments"}
	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("ping failed: %v", err)
	}

	fake.pingErr = errors.New("unreachable")
	if err := client.Ping(context.Background()); err == nil {
		t.Fatalf("expected ping failure")
	}
}

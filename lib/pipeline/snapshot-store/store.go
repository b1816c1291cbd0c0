package snapshotstore

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"recruiting-backend/lib/pipeline"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

// Provider - хранение снимка порядка отображения воронки в S3
type Provider interface {
	Save(ctx context.Context, snapshot pipeline.Snapshot) error
	// Load возвращает nil, если снимок еще не сохранялся
	Load(ctx context.Context) (*pipeline.Snapshot, error)
}

func NewInstance(client *minio.Client, bucketName, objectName string) Provider {
	return &impl{
		client:     client,
		bucketName: bucketName,
		objectName: objectName,
	}
}

type impl struct {
	client     *minio.Client
	bucketName string
	objectName string
}

func (i impl) Save(ctx context.Context, snapshot pipeline.Snapshot) error {
	body, err := json.Marshal(snapshot)
	if err != nil {
		return errors.Wrap(err, "ошибка сериализации снимка воронки")
	}
	_, err = i.client.PutObject(ctx, i.bucketName, i.objectName, bytes.NewReader(body), int64(len(body)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return errors.Wrap(err, "ошибка сохранения снимка воронки")
	}
	return nil
}

func (i impl) Load(ctx context.Context) (*pipeline.Snapshot, error) {
	object, err := i.client.GetObject(ctx, i.bucketName, i.objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения снимка воронки")
	}
	defer object.Close()
	body, err := io.ReadAll(object)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, nil
		}
		return nil, errors.Wrap(err, "ошибка чтения снимка воронки")
	}
	snapshot := pipeline.Snapshot{}
	if err = json.Unmarshal(body, &snapshot); err != nil {
		return nil, errors.Wrap(err, "ошибка разбора снимка воронки")
	}
	return &snapshot, nil
}

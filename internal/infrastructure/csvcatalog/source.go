package csvcatalog

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/jhoicas/neocommerce-api/internal/domain/entity"
)

// LoadFile lee el catálogo desde un CSV local.
func LoadFile(path string) ([]entity.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: abrir %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// S3Loader lee el catálogo desde un objeto CSV en S3.
type S3Loader struct {
	client s3iface.S3API
}

// NewS3Loader construye el loader con una sesión AWS por defecto (credenciales del entorno).
func NewS3Loader(region string) (*S3Loader, error) {
	sess, err := session.NewSession(aws.NewConfig().WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("s3: crear sesión: %w", err)
	}
	return &S3Loader{client: s3.New(sess)}, nil
}

// NewS3LoaderWithClient permite inyectar el cliente (tests).
func NewS3LoaderWithClient(client s3iface.S3API) *S3Loader {
	return &S3Loader{client: client}
}

// Load descarga bucket/key y decodifica el CSV.
func (l *S3Loader) Load(ctx context.Context, bucket, key string) ([]entity.Product, error) {
	out, err := l.client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("s3: obtener %s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()
	return Decode(out.Body)
}

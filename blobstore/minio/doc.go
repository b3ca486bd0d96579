// Package minio provides a BlobStore implementation using the MinIO client.
//
// MinIO is S3-compatible object storage; the same client also talks to Ceph,
// SeaweedFS, Garage, and AWS S3 itself. Snapshots written through this store
// land as single objects under the configured bucket and prefix.
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minioblob.NewStore(client, "my-bucket", "catalog/")
package minio

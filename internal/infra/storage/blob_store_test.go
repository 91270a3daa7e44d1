package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobImageStore_PutListDelete(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	store := NewBlobImageStore(bucket)

	written, err := store.Put(ctx, "exams/e1/front.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, int64(len("png-bytes")), written)

	_, err = store.Put(ctx, "exams/e1/report.pdf", "application/pdf", strings.NewReader("pdf"))
	require.NoError(t, err)
	_, err = store.Put(ctx, "exams/e2/other.png", "image/png", strings.NewReader("x"))
	require.NoError(t, err)

	images, err := store.List(ctx, "exams/e1/")
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, "front.png", images[0].Name)
	assert.Equal(t, "image/png", images[0].ContentType)
	assert.Equal(t, "report.pdf", images[1].Name)

	deleted, err := store.DeletePrefix(ctx, "exams/e1/")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"exams/e1/front.png", "exams/e1/report.pdf"}, deleted)

	images, err = store.List(ctx, "exams/e1/")
	require.NoError(t, err)
	assert.Empty(t, images)

	remaining, err := store.List(ctx, "exams/e2/")
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

package notification

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fleet-maintenance-backend/internal/db"
	"fleet-maintenance-backend/internal/model"
)

// mockSender is a mock implementation of the NotificationSender interface.
type mockSender struct {
	SendFunc func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

func (m *mockSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return m.SendFunc(payload, sub, options)
}

func newTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	})
	require.NoError(t, db.Migrate(gormDB))
	return gormDB
}

func subscribe(t *testing.T, gormDB *gorm.DB, endpoint, equipment string) {
	t.Helper()
	require.NoError(t, gormDB.Create(&model.PushSubscription{
		Endpoint: endpoint,
		P256DH:   "test_p256dh",
		Auth:     "test_auth",
	}).Error)
	require.NoError(t, gormDB.Create(&model.SubscriptionEquipment{
		Endpoint:    endpoint,
		EquipmentID: equipment,
	}).Error)
}

func TestWorkerPool_Dispatch(t *testing.T) {
	wp := NewWorkerPool(1, newTestDB(t), &webpush.Options{})

	wp.Dispatch(AlertJob{EquipmentID: "Main Engine", Message: "test"})

	select {
	case job := <-wp.jobs:
		assert.Equal(t, "Main Engine", job.EquipmentID)
	case <-time.After(1 * time.Second):
		t.Fatal("timed out waiting for job to be dispatched")
	}
}

func TestWorkerPool_SendsToSubscribers(t *testing.T) {
	gormDB := newTestDB(t)
	subscribe(t, gormDB, "https://example.com/push", "Main Engine")
	subscribe(t, gormDB, "https://example.com/other", "Generator")

	wp := NewWorkerPool(1, gormDB, &webpush.Options{})

	var wg sync.WaitGroup
	wg.Add(1)
	wp.sender = &mockSender{
		SendFunc: func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
			assert.Equal(t, "https://example.com/push", sub.Endpoint)
			assert.Equal(t, "Inspection required for Main Engine after 2100.0 operating hours.", string(payload))
			wg.Done()
			return &http.Response{
				StatusCode: http.StatusCreated,
				Body:       io.NopCloser(bytes.NewBufferString("")),
			}, nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wp.Start(ctx)

	wp.Dispatch(AlertJob{
		EquipmentID: "Main Engine",
		Message:     "Inspection required for Main Engine after 2100.0 operating hours.",
	})
	wg.Wait()
}

func TestWorkerPool_DeletesExpiredSubscription(t *testing.T) {
	gormDB := newTestDB(t)
	subscribe(t, gormDB, "https://example.com/expired", "Generator")

	wp := NewWorkerPool(1, gormDB, &webpush.Options{})
	wp.sender = &mockSender{
		SendFunc: func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusGone,
				Body:       io.NopCloser(bytes.NewBufferString("")),
			}, nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wp.Start(ctx)

	wp.Dispatch(AlertJob{EquipmentID: "Generator", Message: "gone"})

	assert.Eventually(t, func() bool {
		var count int64
		gormDB.Model(&model.PushSubscription{}).Count(&count)
		return count == 0
	}, 2*time.Second, 20*time.Millisecond, "expired subscription should be pruned")

	var linkCount int64
	gormDB.Model(&model.SubscriptionEquipment{}).Count(&linkCount)
	assert.Zero(t, linkCount, "equipment links must be pruned with the subscription")
}

package audit_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/cashbook-management/internal"
	"github.com/frahmantamala/cashbook-management/internal/audit"
	"github.com/frahmantamala/cashbook-management/internal/core/events"
)

func TestAudit(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Audit Suite")
}

type mockAuditRepository struct {
	entries   []*audit.Entry
	listLimit int
}

func (m *mockAuditRepository) Create(e *audit.Entry) error {
	e.ID = int64(len(m.entries) + 1)
	m.entries = append(m.entries, e)
	return nil
}

func (m *mockAuditRepository) ListRecent(limit int) ([]*audit.Entry, error) {
	m.listLimit = limit
	return m.entries, nil
}

var _ = Describe("Recorder", func() {
	var (
		repo *mockAuditRepository
		bus  *events.EventBus
	)

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		repo = &mockAuditRepository{}
		bus = events.NewEventBus(logger)

		service := audit.NewService(repo, logger)
		audit.NewRecorder(service, logger).Register(bus)
	})

	It("appends one entry per ledger mutation event", func() {
		event := events.MovementEvent(events.EventMovementDeleted, "boss", 7, "moved to trash")
		Expect(bus.PublishSync(context.Background(), event)).To(Succeed())

		Expect(repo.entries).To(HaveLen(1))
		Expect(repo.entries[0].Action).To(Equal(audit.ActionDelete))
		Expect(repo.entries[0].Username).To(Equal("boss"))
		Expect(repo.entries[0].RecordID).To(Equal(int64(7)))
	})

	It("falls back to the context username when the payload carries none", func() {
		event := events.MovementEvent(events.EventMovementPurged, "", 9, "purged from trash")
		ctx := internal.ContextWithUsername(context.Background(), "boss")
		Expect(bus.PublishSync(ctx, event)).To(Succeed())

		Expect(repo.entries).To(HaveLen(1))
		Expect(repo.entries[0].Username).To(Equal("boss"))
	})
})

var _ = Describe("Service", func() {
	It("defaults the history listing to the last 1000 entries", func() {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		repo := &mockAuditRepository{}
		service := audit.NewService(repo, logger)

		_, err := service.ListRecent(0)
		Expect(err).NotTo(HaveOccurred())
		Expect(repo.listLimit).To(Equal(1000))

		_, err = service.ListRecent(25)
		Expect(err).NotTo(HaveOccurred())
		Expect(repo.listLimit).To(Equal(25))
	})
})

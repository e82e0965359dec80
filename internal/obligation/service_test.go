package obligation_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	errors "github.com/frahmantamala/cashbook-management/internal"
	"github.com/frahmantamala/cashbook-management/internal/core/money"
	"github.com/frahmantamala/cashbook-management/internal/obligation"
)

func TestObligationService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "ObligationService Suite")
}

// Mock repository for testing
type mockObligationRepository struct {
	books  map[obligation.Kind]map[int64]*obligation.Obligation
	nextID int64
}

func newMockObligationRepository() *mockObligationRepository {
	return &mockObligationRepository{
		books: map[obligation.Kind]map[int64]*obligation.Obligation{
			obligation.KindReceivable: {},
			obligation.KindPayable:    {},
		},
		nextID: 1,
	}
}

func (m *mockObligationRepository) Create(o *obligation.Obligation) error {
	o.ID = m.nextID
	m.nextID++
	m.books[o.Kind][o.ID] = o
	return nil
}

func (m *mockObligationRepository) GetByID(kind obligation.Kind, id int64) (*obligation.Obligation, error) {
	o, exists := m.books[kind][id]
	if !exists {
		return nil, errors.ErrObligationNotFound
	}
	return o, nil
}

func (m *mockObligationRepository) UpdateStatus(kind obligation.Kind, id int64, status obligation.Status) error {
	o, exists := m.books[kind][id]
	if !exists {
		return errors.ErrObligationNotFound
	}
	o.Status = status
	return nil
}

func (m *mockObligationRepository) ListAll(kind obligation.Kind) ([]*obligation.Obligation, error) {
	var result []*obligation.Obligation
	for _, o := range m.books[kind] {
		result = append(result, o)
	}
	return result, nil
}

func (m *mockObligationRepository) SumByStatus(kind obligation.Kind, status obligation.Status, currency money.Currency) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, o := range m.books[kind] {
		if o.Status == status && o.Currency == currency {
			total = total.Add(o.Amount)
		}
	}
	return total, nil
}

var _ = Describe("ObligationService", func() {
	var (
		repo    *mockObligationRepository
		service *obligation.Service
	)

	validDTO := func(kind obligation.Kind) obligation.RecordObligationDTO {
		return obligation.RecordObligationDTO{
			Kind:        kind,
			Counterpart: "Acme Distribuciones",
			Amount:      decimal.NewFromInt(500),
			Currency:    "VES",
			DueDate:     time.Now().AddDate(0, 0, 14).Format("2006-01-02"),
			Description: "invoice 1007",
		}
	}

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		repo = newMockObligationRepository()
		service = obligation.NewService(repo, logger)
	})

	Describe("Record", func() {
		It("persists a pending obligation in its kind's book", func() {
			o, err := service.Record(validDTO(obligation.KindReceivable))
			Expect(err).NotTo(HaveOccurred())
			Expect(o.Status).To(Equal(obligation.StatusPending))
			Expect(repo.books[obligation.KindReceivable]).To(HaveKey(o.ID))
			Expect(repo.books[obligation.KindPayable]).To(BeEmpty())
		})

		It("rejects a blank counterpart", func() {
			dto := validDTO(obligation.KindPayable)
			dto.Counterpart = ""
			_, err := service.Record(dto)
			Expect(err).To(HaveOccurred())
		})

		It("rejects a malformed due date", func() {
			dto := validDTO(obligation.KindPayable)
			dto.DueDate = "14-02-2026"
			_, err := service.Record(dto)
			Expect(err).To(HaveOccurred())

			appErr, ok := errors.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(errors.ErrorTypeValidation))
		})

		It("rejects an unknown currency", func() {
			dto := validDTO(obligation.KindReceivable)
			dto.Currency = "EUR"
			_, err := service.Record(dto)
			Expect(err).To(HaveOccurred())
		})

		It("rejects an unknown kind", func() {
			dto := validDTO("loan")
			_, err := service.Record(dto)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("MarkPaid", func() {
		It("settles a pending obligation", func() {
			o, err := service.Record(validDTO(obligation.KindReceivable))
			Expect(err).NotTo(HaveOccurred())

			Expect(service.MarkPaid(obligation.KindReceivable, o.ID)).To(Succeed())
			Expect(repo.books[obligation.KindReceivable][o.ID].Status).To(Equal(obligation.StatusPaid))
		})

		It("is a no-op on an already paid obligation", func() {
			o, err := service.Record(validDTO(obligation.KindPayable))
			Expect(err).NotTo(HaveOccurred())

			Expect(service.MarkPaid(obligation.KindPayable, o.ID)).To(Succeed())
			Expect(service.MarkPaid(obligation.KindPayable, o.ID)).To(Succeed())
			Expect(repo.books[obligation.KindPayable][o.ID].Status).To(Equal(obligation.StatusPaid))
		})

		It("returns not found for a missing id", func() {
			err := service.MarkPaid(obligation.KindReceivable, 404)
			Expect(err).To(Equal(errors.ErrObligationNotFound))
		})

		It("does not cross into the other kind's book", func() {
			o, err := service.Record(validDTO(obligation.KindReceivable))
			Expect(err).NotTo(HaveOccurred())

			err = service.MarkPaid(obligation.KindPayable, o.ID)
			Expect(err).To(Equal(errors.ErrObligationNotFound))
		})
	})

	Describe("EffectiveStatus", func() {
		It("derives overdue for a pending obligation past its due date", func() {
			o := &obligation.Obligation{
				Status:  obligation.StatusPending,
				DueDate: time.Now().AddDate(0, 0, -1),
			}
			Expect(o.EffectiveStatus(time.Now())).To(Equal(obligation.StatusOverdue))
		})

		It("keeps pending on the due date itself", func() {
			now := time.Now()
			o := &obligation.Obligation{Status: obligation.StatusPending, DueDate: now}
			Expect(o.EffectiveStatus(now)).To(Equal(obligation.StatusPending))
		})

		It("never shows a paid obligation as overdue", func() {
			o := &obligation.Obligation{
				Status:  obligation.StatusPaid,
				DueDate: time.Now().AddDate(0, 0, -30),
			}
			Expect(o.EffectiveStatus(time.Now())).To(Equal(obligation.StatusPaid))
		})
	})

	Describe("SumPaid", func() {
		It("totals settled obligations per kind and currency", func() {
			a, err := service.Record(validDTO(obligation.KindReceivable))
			Expect(err).NotTo(HaveOccurred())
			Expect(service.MarkPaid(obligation.KindReceivable, a.ID)).To(Succeed())

			usd := validDTO(obligation.KindReceivable)
			usd.Currency = "USD"
			usd.Amount = decimal.NewFromInt(75)
			b, err := service.Record(usd)
			Expect(err).NotTo(HaveOccurred())
			Expect(service.MarkPaid(obligation.KindReceivable, b.ID)).To(Succeed())

			// still pending, must not count
			_, err = service.Record(validDTO(obligation.KindReceivable))
			Expect(err).NotTo(HaveOccurred())

			total, err := service.SumPaid(obligation.KindReceivable, money.CurrencyVES)
			Expect(err).NotTo(HaveOccurred())
			Expect(total.Equal(decimal.NewFromInt(500))).To(BeTrue())

			total, err = service.SumPaid(obligation.KindReceivable, money.CurrencyUSD)
			Expect(err).NotTo(HaveOccurred())
			Expect(total.Equal(decimal.NewFromInt(75))).To(BeTrue())
		})
	})
})

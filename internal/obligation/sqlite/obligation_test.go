package sqlite_test

import (
	"fmt"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	errors "github.com/frahmantamala/cashbook-management/internal"
	"github.com/frahmantamala/cashbook-management/internal/core/money"
	"github.com/frahmantamala/cashbook-management/internal/database"
	"github.com/frahmantamala/cashbook-management/internal/obligation"
	"github.com/frahmantamala/cashbook-management/internal/obligation/sqlite"
)

func TestObligationRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "ObligationRepository Suite")
}

// mirrors db/migrations/00003_create_obligations.sql without the CHECK
// constraints, which the repository never relies on
const obligationDDL = `CREATE TABLE %s (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    counterpart TEXT NOT NULL,
    amount TEXT NOT NULL,
    currency TEXT NOT NULL,
    due_date DATE NOT NULL,
    status TEXT NOT NULL DEFAULT 'pending',
    description TEXT,
    registered_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

var _ = Describe("ObligationRepository", func() {
	var (
		h    *database.Handle
		repo obligation.Repository
	)

	record := func(kind obligation.Kind, amount string, due time.Time) *obligation.Obligation {
		o := &obligation.Obligation{
			Kind:         kind,
			Counterpart:  "Acme Distribuciones",
			Amount:       decimal.RequireFromString(amount),
			Currency:     money.CurrencyVES,
			DueDate:      due,
			Status:       obligation.StatusPending,
			RegisteredAt: time.Now(),
		}
		Expect(repo.Create(o)).To(Succeed())
		return o
	}

	BeforeEach(func() {
		var err error
		h, err = database.Open(":memory:")
		Expect(err).NotTo(HaveOccurred())
		for _, kind := range []obligation.Kind{obligation.KindReceivable, obligation.KindPayable} {
			ddl := fmt.Sprintf(obligationDDL, kind.TableName())
			Expect(h.DB().Exec(ddl).Error).To(Succeed())
		}
		repo = sqlite.NewObligationRepository(h)
	})

	AfterEach(func() {
		Expect(h.Close()).To(Succeed())
	})

	It("keeps the two books in separate tables", func() {
		due := time.Now().AddDate(0, 0, 7)
		r := record(obligation.KindReceivable, "100", due)
		record(obligation.KindPayable, "200", due)

		got, err := repo.GetByID(obligation.KindReceivable, r.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Kind).To(Equal(obligation.KindReceivable))
		Expect(got.Amount.Equal(decimal.NewFromInt(100))).To(BeTrue())

		receivables, err := repo.ListAll(obligation.KindReceivable)
		Expect(err).NotTo(HaveOccurred())
		Expect(receivables).To(HaveLen(1))

		payables, err := repo.ListAll(obligation.KindPayable)
		Expect(err).NotTo(HaveOccurred())
		Expect(payables).To(HaveLen(1))
		Expect(payables[0].Amount.Equal(decimal.NewFromInt(200))).To(BeTrue())
	})

	It("returns the not-found sentinel for a missing id", func() {
		_, err := repo.GetByID(obligation.KindPayable, 404)
		Expect(err).To(Equal(errors.ErrObligationNotFound))
	})

	It("lists by due date ascending", func() {
		now := time.Now()
		record(obligation.KindReceivable, "3", now.AddDate(0, 0, 30))
		record(obligation.KindReceivable, "1", now.AddDate(0, 0, 1))
		record(obligation.KindReceivable, "2", now.AddDate(0, 0, 15))

		all, err := repo.ListAll(obligation.KindReceivable)
		Expect(err).NotTo(HaveOccurred())
		Expect(all).To(HaveLen(3))
		Expect(all[0].Amount.Equal(decimal.NewFromInt(1))).To(BeTrue())
		Expect(all[1].Amount.Equal(decimal.NewFromInt(2))).To(BeTrue())
		Expect(all[2].Amount.Equal(decimal.NewFromInt(3))).To(BeTrue())
	})

	It("sums amounts with exact decimal arithmetic", func() {
		due := time.Now().AddDate(0, 0, 7)
		a := record(obligation.KindReceivable, "0.1", due)
		b := record(obligation.KindReceivable, "0.2", due)
		record(obligation.KindReceivable, "99", due) // stays pending

		Expect(repo.UpdateStatus(obligation.KindReceivable, a.ID, obligation.StatusPaid)).To(Succeed())
		Expect(repo.UpdateStatus(obligation.KindReceivable, b.ID, obligation.StatusPaid)).To(Succeed())

		total, err := repo.SumByStatus(obligation.KindReceivable, obligation.StatusPaid, money.CurrencyVES)
		Expect(err).NotTo(HaveOccurred())
		Expect(total.Equal(decimal.RequireFromString("0.3"))).To(BeTrue())
	})
})

package sqlite_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	errors "github.com/frahmantamala/cashbook-management/internal"
	"github.com/frahmantamala/cashbook-management/internal/core/money"
	"github.com/frahmantamala/cashbook-management/internal/database"
	"github.com/frahmantamala/cashbook-management/internal/movement"
	"github.com/frahmantamala/cashbook-management/internal/movement/sqlite"
)

func TestMovementRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "MovementRepository Suite")
}

var _ = Describe("MovementRepository", func() {
	var (
		h    *database.Handle
		repo movement.Repository
	)

	record := func(m movement.Movement) *movement.Movement {
		if m.Username == "" {
			m.Username = "clerk"
		}
		if m.Status == "" {
			m.Status = movement.StatusActive
		}
		if m.Bank == "" {
			m.Bank = movement.BankNone
		}
		if m.CreatedAt.IsZero() {
			m.CreatedAt = time.Now()
		}
		Expect(repo.Create(&m)).To(Succeed())
		return &m
	}

	BeforeEach(func() {
		var err error
		h, err = database.Open(":memory:")
		Expect(err).NotTo(HaveOccurred())
		Expect(h.DB().AutoMigrate(&movement.Movement{})).To(Succeed())
		repo = sqlite.NewMovementRepository(h)
	})

	AfterEach(func() {
		Expect(h.Close()).To(Succeed())
	})

	Describe("Create and GetByID", func() {
		It("round-trips a movement with its decimal amount intact", func() {
			saved := record(movement.Movement{
				Direction: movement.DirectionIn,
				Amount:    decimal.RequireFromString("1234.56"),
				Currency:  money.CurrencyVES,
				Channel:   movement.ChannelDigital,
				Bank:      movement.BankVen,
			})

			got, err := repo.GetByID(saved.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Amount.Equal(decimal.RequireFromString("1234.56"))).To(BeTrue())
			Expect(got.Bank).To(Equal(movement.BankVen))
		})

		It("returns the not-found sentinel for a missing id", func() {
			_, err := repo.GetByID(404)
			Expect(err).To(Equal(errors.ErrMovementNotFound))
		})
	})

	Describe("status transitions", func() {
		It("moves a row through trash and back", func() {
			m := record(movement.Movement{
				Direction: movement.DirectionOut,
				Amount:    decimal.NewFromInt(50),
				Currency:  money.CurrencyUSD,
				Channel:   movement.ChannelCash,
			})

			Expect(repo.UpdateStatus(m.ID, movement.StatusDeleted)).To(Succeed())
			trashed, err := repo.ListByStatus(movement.StatusDeleted)
			Expect(err).NotTo(HaveOccurred())
			Expect(trashed).To(HaveLen(1))

			active, err := repo.ListByStatus(movement.StatusActive)
			Expect(err).NotTo(HaveOccurred())
			Expect(active).To(BeEmpty())

			Expect(repo.UpdateStatus(m.ID, movement.StatusActive)).To(Succeed())
			active, err = repo.ListByStatus(movement.StatusActive)
			Expect(err).NotTo(HaveOccurred())
			Expect(active).To(HaveLen(1))
		})

		It("removes purged rows from every listing", func() {
			m := record(movement.Movement{
				Direction: movement.DirectionIn,
				Amount:    decimal.NewFromInt(10),
				Currency:  money.CurrencyVES,
				Channel:   movement.ChannelCash,
			})

			Expect(repo.Delete(m.ID)).To(Succeed())
			all, err := repo.ListAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(BeEmpty())
		})
	})

	Describe("ListActiveFiltered", func() {
		BeforeEach(func() {
			record(movement.Movement{Direction: movement.DirectionIn, Amount: decimal.NewFromInt(100), Currency: money.CurrencyVES, Channel: movement.ChannelDigital, Bank: movement.BankVen})
			record(movement.Movement{Direction: movement.DirectionIn, Amount: decimal.NewFromInt(70), Currency: money.CurrencyVES, Channel: movement.ChannelDigital, Bank: movement.BankMercantil})
			record(movement.Movement{Direction: movement.DirectionIn, Amount: decimal.NewFromInt(30), Currency: money.CurrencyUSD, Channel: movement.ChannelCash})
			deleted := record(movement.Movement{Direction: movement.DirectionIn, Amount: decimal.NewFromInt(999), Currency: money.CurrencyVES, Channel: movement.ChannelCash})
			Expect(repo.UpdateStatus(deleted.ID, movement.StatusDeleted)).To(Succeed())
		})

		It("excludes trashed rows", func() {
			rows, err := repo.ListActiveFiltered(movement.Filter{})
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(3))
		})

		It("narrows by currency", func() {
			cur := money.CurrencyUSD
			rows, err := repo.ListActiveFiltered(movement.Filter{Currency: &cur})
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(1))
			Expect(rows[0].Currency).To(Equal(money.CurrencyUSD))
		})

		It("narrows by bank over digital rows only", func() {
			bank := movement.BankVen
			rows, err := repo.ListActiveFiltered(movement.Filter{Bank: &bank})
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(1))
			Expect(rows[0].Amount.Equal(decimal.NewFromInt(100))).To(BeTrue())
		})

		It("narrows by calendar date", func() {
			old := time.Now().AddDate(0, 0, -10)
			record(movement.Movement{Direction: movement.DirectionOut, Amount: decimal.NewFromInt(5), Currency: money.CurrencyVES, Channel: movement.ChannelCash, CreatedAt: old})

			since := time.Now().AddDate(0, 0, -7)
			rows, err := repo.ListActiveFiltered(movement.Filter{Since: &since})
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(3))
		})
	})
})

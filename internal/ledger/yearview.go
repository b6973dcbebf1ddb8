package ledger

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"rentledger-backend/internal/models"
)

// recordSource is what BuildYearView needs from the store. *Store satisfies
// it; tests supply an in-memory source.
type recordSource interface {
	LedgerForYear(ctx context.Context, year int) ([]models.RentLedgerEntry, error)
	UnpaidThroughYear(ctx context.Context, year int, shops []string) ([]models.RentLedgerEntry, error)
	TenantsForShops(ctx context.Context, shops []string) ([]models.Tenant, error)
	AdvancesForShops(ctx context.Context, shops []string) ([]models.AdvanceRecord, error)
}

type TenantProfile struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	IDNumber      string `json:"id_number"`
	FathersName   string `json:"fathers_name"`
	NameHindi     string `json:"tenant_name_hindi"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	Status        string `json:"status"`
	AgreementDate string `json:"agreementDate"`
}

type MonthEntry struct {
	Rent        float64              `json:"rent"`
	Paid        float64              `json:"paid"`
	Status      models.PaymentStatus `json:"status"`
	Date        string               `json:"date"`
	AdvanceUsed float64              `json:"advanceUsed"`
	Comment     string               `json:"comment"`
}

type ShopView struct {
	Tenant           TenantProfile        `json:"tenant"`
	RentAmount       float64              `json:"rentAmount"`
	MonthlyData      *viewMap[MonthEntry] `json:"monthlyData"`
	AdvanceAmount    float64              `json:"advanceAmount"`
	PreviousYearDues PreviousDues         `json:"previousYearDues"`
}

type YearView struct {
	Shops *viewMap[*ShopView] `json:"shops"`
}

// BuildYearView assembles the per-shop consolidated view for one year.
//
// The current-year ledger rows define the shop universe: a shop with no row
// in the requested year does not appear, and a shop whose tenant record was
// deleted still does. Everything here is a read-side projection; nothing is
// written back.
func BuildYearView(ctx context.Context, src recordSource, year int) (*YearView, error) {
	current, err := src.LedgerForYear(ctx, year)
	if err != nil {
		return nil, err
	}

	view := &YearView{Shops: newViewMap[*ShopView]()}
	if len(current) == 0 {
		return view, nil
	}

	shops := make([]string, 0)
	currentByShop := make(map[string][]models.RentLedgerEntry)
	for _, row := range current {
		if _, seen := currentByShop[row.ShopNo]; !seen {
			shops = append(shops, row.ShopNo)
		}
		currentByShop[row.ShopNo] = append(currentByShop[row.ShopNo], row)
	}

	// The shop set is known now, so the remaining three fetches are
	// independent of each other.
	var (
		unpaid   []models.RentLedgerEntry
		tenants  []models.Tenant
		advances []models.AdvanceRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		unpaid, err = src.UnpaidThroughYear(gctx, year, shops)
		return err
	})
	g.Go(func() error {
		var err error
		tenants, err = src.TenantsForShops(gctx, shops)
		return err
	})
	g.Go(func() error {
		var err error
		advances, err = src.AdvancesForShops(gctx, shops)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	unpaidByShop := make(map[string][]models.RentLedgerEntry)
	for _, row := range unpaid {
		unpaidByShop[row.ShopNo] = append(unpaidByShop[row.ShopNo], row)
	}
	tenantsByShop := make(map[string][]models.Tenant)
	for _, row := range tenants {
		tenantsByShop[row.ShopNo] = append(tenantsByShop[row.ShopNo], row)
	}
	advancesByShop := make(map[string][]models.AdvanceRecord)
	for _, row := range advances {
		advancesByShop[row.ShopNo] = append(advancesByShop[row.ShopNo], row)
	}

	for _, shop := range shops {
		view.Shops.Set(shop, buildShopView(
			year,
			currentByShop[shop],
			unpaidByShop[shop],
			tenantsByShop[shop],
			advancesByShop[shop],
		))
	}

	return view, nil
}

func buildShopView(
	year int,
	rows []models.RentLedgerEntry,
	unpaid []models.RentLedgerEntry,
	tenants []models.Tenant,
	advances []models.AdvanceRecord,
) *ShopView {
	// The resolved tenant name comes from the shop's own ledger rows, not
	// the tenant collection: the ledger is authoritative even for shops
	// whose tenant record is long gone.
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.TenantName)
	}
	resolvedName := maxString(names)

	// Name equality stands in for a join key; shops with several
	// historical tenants only contribute the rows of the resolved one.
	matched := make([]models.Tenant, 0, len(tenants))
	for _, t := range tenants {
		if t.TenantName == resolvedName {
			matched = append(matched, t)
		}
	}

	var phones, idNumbers, fathers, hindiNames, emails, addresses, statuses []string
	var tenantRents []float64
	for _, t := range matched {
		phones = append(phones, t.MobileNumber)
		idNumbers = append(idNumbers, t.IDNumber)
		fathers = append(fathers, t.FathersName)
		hindiNames = append(hindiNames, t.TenantNameHindi)
		emails = append(emails, t.Email)
		addresses = append(addresses, t.Address)
		statuses = append(statuses, string(t.Status))
		tenantRents = append(tenantRents, t.MonthlyRent)
	}

	rentAmount, ok := maxFloat(tenantRents)
	if !ok {
		// No matching tenant record: fall back to what the ledger itself says.
		ledgerRents := make([]float64, 0, len(rows))
		for _, row := range rows {
			ledgerRents = append(ledgerRents, row.MonthlyRent)
		}
		rentAmount, _ = maxFloat(ledgerRents)
	}

	var advanceVals []float64
	for _, a := range advances {
		if a.TenantName == resolvedName && a.AdvanceRemaining != nil {
			advanceVals = append(advanceVals, *a.AdvanceRemaining)
		}
	}
	advanceAmount, _ := maxFloat(advanceVals)

	var earliest time.Time
	for _, row := range rows {
		if row.PaymentDate.IsZero() {
			continue
		}
		if earliest.IsZero() || row.PaymentDate.Before(earliest) {
			earliest = row.PaymentDate
		}
	}
	agreementDate := fmt.Sprintf("%d-01-01", year)
	if !earliest.IsZero() {
		agreementDate = earliest.Format("2006-01-02")
	}

	monthly := newViewMap[MonthEntry]()
	for _, row := range rows {
		rent := row.MonthlyRent
		if rent == 0 {
			rent = rentAmount
		}
		date := ""
		if !row.PaymentDate.IsZero() {
			date = row.PaymentDate.Format("2006-01-02")
		}
		comment := ""
		if row.Comments != nil {
			comment = *row.Comments
		}
		monthly.Set(row.RentMonth, MonthEntry{
			Rent:        rent,
			Paid:        row.AmountPaid,
			Status:      row.PaymentStatus,
			Date:        date,
			AdvanceUsed: row.AdvanceDeducted,
			Comment:     comment,
		})
	}

	// The current year's own unpaid rows already show up in monthlyData;
	// only strictly older years count as carried-forward dues.
	prior := make([]models.RentLedgerEntry, 0, len(unpaid))
	for _, row := range unpaid {
		if row.RentYear < year {
			prior = append(prior, row)
		}
	}

	return &ShopView{
		Tenant: TenantProfile{
			Name:          resolvedName,
			Phone:         maxString(phones),
			IDNumber:      maskIDNumber(maxString(idNumbers)),
			FathersName:   maxString(fathers),
			NameHindi:     maxString(hindiNames),
			Email:         maxString(emails),
			Address:       maxString(addresses),
			Status:        maxString(statuses),
			AgreementDate: agreementDate,
		},
		RentAmount:       rentAmount,
		MonthlyData:      monthly,
		AdvanceAmount:    advanceAmount,
		PreviousYearDues: computePreviousDues(prior),
	}
}

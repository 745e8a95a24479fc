package financing

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/ArshadAliDS/Amazon/internal/domain"
)

// Column headers accepted in an uploaded expense file, matched
// case-insensitively.
const (
	expenseOrderIDHeader = "amazon-order-id"
	expensesHeader       = "expenses"
	courierHeader        = "courier charges"
)

// ExpenseStore holds uploaded expense datasets in memory until their
// TTL runs out. Datasets never survive a restart.
type ExpenseStore struct {
	cache *gocache.Cache
}

func NewExpenseStore(ttl time.Duration) *ExpenseStore {
	return &ExpenseStore{
		cache: gocache.New(ttl, 10*time.Minute),
	}
}

func (s *ExpenseStore) Put(dataset *domain.ExpenseDataset) {
	s.cache.Set(dataset.ID, dataset, gocache.DefaultExpiration)
}

func (s *ExpenseStore) Get(id string) (*domain.ExpenseDataset, bool) {
	value, found := s.cache.Get(id)
	if !found {
		return nil, false
	}
	return value.(*domain.ExpenseDataset), true
}

// parseExpenseCSV reads an uploaded expense file. All three columns
// must be present in the header; unparsable amounts inside a row
// default to zero so one bad cell does not reject the whole upload.
func parseExpenseCSV(r io.Reader) ([]domain.ExpenseRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, domain.WrapFailure(err, domain.FailureConfig, "reading expense file header")
	}

	orderIdx, expenseIdx, courierIdx := -1, -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case expenseOrderIDHeader:
			orderIdx = i
		case expensesHeader:
			expenseIdx = i
		case courierHeader:
			courierIdx = i
		}
	}
	missing := []string{}
	if orderIdx == -1 {
		missing = append(missing, expenseOrderIDHeader)
	}
	if expenseIdx == -1 {
		missing = append(missing, expensesHeader)
	}
	if courierIdx == -1 {
		missing = append(missing, courierHeader)
	}
	if len(missing) > 0 {
		return nil, domain.NewFailure(domain.FailureConfig,
			"expense file is missing required columns: %s", strings.Join(missing, ", "))
	}

	records := []domain.ExpenseRecord{}
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			logrus.WithError(err).WithField("line", line).Warn("skipping malformed expense row")
			continue
		}

		orderID := strings.TrimSpace(row[orderIdx])
		if orderID == "" {
			continue
		}

		records = append(records, domain.ExpenseRecord{
			OrderID:        orderID,
			Expenses:       cellFloat(row, expenseIdx),
			CourierCharges: cellFloat(row, courierIdx),
		})
	}

	return records, nil
}

func cellFloat(row []string, idx int) float64 {
	if idx < 0 || idx >= len(row) {
		return 0
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
	if err != nil {
		return 0
	}
	return value
}

// UploadExpenses parses an expense file and stores it under a fresh
// dataset id.
func (s *Service) UploadExpenses(fileName string, r io.Reader) (*domain.ExpenseDataset, error) {
	records, err := parseExpenseCSV(r)
	if err != nil {
		return nil, err
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	dataset := &domain.ExpenseDataset{
		ID:         id,
		FileName:   fileName,
		Records:    records,
		UploadedAt: time.Now(),
	}
	s.expenses.Put(dataset)

	logrus.WithFields(logrus.Fields{
		"dataset_id": id,
		"file_name":  fileName,
		"records":    len(records),
	}).Info("expense dataset stored")

	return dataset, nil
}

// mergeExpenses left-joins expense records onto financial rows by order
// id. Rows without a match keep zero expenses.
func mergeExpenses(rows []domain.FinancialRow, records []domain.ExpenseRecord) []domain.FinancialRow {
	byOrder := make(map[string]domain.ExpenseRecord, len(records))
	for _, record := range records {
		byOrder[record.OrderID] = record
	}

	for i := range rows {
		record, ok := byOrder[rows[i].OrderID]
		if !ok {
			continue
		}
		rows[i].Expenses = record.Expenses
		rows[i].CourierCharges = record.CourierCharges
		rows[i].HasExpenses = true
	}

	return rows
}

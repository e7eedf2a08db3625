package service

import (
	"strconv"
	"time"

	"github.com/javiator/tenant-management-applications/internal/models"
	"github.com/javiator/tenant-management-applications/internal/report"
	"github.com/javiator/tenant-management-applications/internal/store"
)

// Report is a rendered export ready to stream to the caller.
type Report struct {
	Filename    string
	ContentType string
	Data        []byte
}

const (
	csvContentType  = "text/csv"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var tenantHeaders = []string{
	"ID", "Name", "Property Address", "Passport", "Passport Validity", "Aadhar No",
	"Employment Details", "Permanent Address", "Contact No", "Emergency Contact No",
	"Rent", "Security", "Move In Date", "Contract Start Date", "Contract Expiry Date", "Created Date",
}

var propertyHeaders = []string{"ID", "Address", "Rent", "Maintenance", "Created Date"}

var transactionHeaders = []string{
	"ID", "Property Address", "Tenant Name", "Type", "For Month", "Amount", "Transaction Date", "Comments",
}

// Reports renders the fixed-column exports.
type Reports struct {
	store *store.Store
}

// NewReports returns the report service.
func NewReports(s *store.Store) *Reports {
	return &Reports{store: s}
}

// TenantsCSV exports every tenant.
func (r *Reports) TenantsCSV() (*Report, error) {
	rows, err := r.tenantRows()
	if err != nil {
		return nil, err
	}
	data, err := report.CSV(tenantHeaders, rows)
	if err != nil {
		return nil, err
	}
	return &Report{Filename: "tenants_report.csv", ContentType: csvContentType, Data: data}, nil
}

// PropertiesCSV exports every property.
func (r *Reports) PropertiesCSV() (*Report, error) {
	properties, err := r.store.ListProperties()
	if err != nil {
		return nil, err
	}
	rows := make([][]string, len(properties))
	for i, p := range properties {
		rows[i] = []string{
			strconv.FormatUint(uint64(p.ID), 10),
			p.Address,
			formatAmount(p.Rent),
			formatAmount(p.Maintenance),
			p.CreatedDate.Format(time.RFC3339),
		}
	}
	data, err := report.CSV(propertyHeaders, rows)
	if err != nil {
		return nil, err
	}
	return &Report{Filename: "properties_report.csv", ContentType: csvContentType, Data: data}, nil
}

// TransactionsCSV exports every transaction.
func (r *Reports) TransactionsCSV() (*Report, error) {
	rows, err := r.transactionRows()
	if err != nil {
		return nil, err
	}
	data, err := report.CSV(transactionHeaders, rows)
	if err != nil {
		return nil, err
	}
	return &Report{Filename: "transactions_report.csv", ContentType: csvContentType, Data: data}, nil
}

// TenantsSpreadsheet exports every tenant as an xlsx workbook.
func (r *Reports) TenantsSpreadsheet() (*Report, error) {
	rows, err := r.tenantRows()
	if err != nil {
		return nil, err
	}
	data, err := report.Spreadsheet("Tenants", tenantHeaders, rows)
	if err != nil {
		return nil, err
	}
	return &Report{Filename: "tenants_report.xlsx", ContentType: xlsxContentType, Data: data}, nil
}

// TransactionsSpreadsheet exports every transaction as an xlsx workbook.
func (r *Reports) TransactionsSpreadsheet() (*Report, error) {
	rows, err := r.transactionRows()
	if err != nil {
		return nil, err
	}
	data, err := report.Spreadsheet("Transactions", transactionHeaders, rows)
	if err != nil {
		return nil, err
	}
	return &Report{Filename: "transactions_report.xlsx", ContentType: xlsxContentType, Data: data}, nil
}

func (r *Reports) tenantRows() ([][]string, error) {
	tenants, err := r.store.ListTenants()
	if err != nil {
		return nil, err
	}
	rows := make([][]string, len(tenants))
	for i := range tenants {
		t := &tenants[i]
		address := models.NA
		if t.Property != nil {
			address = t.Property.Address
		}
		rows[i] = []string{
			strconv.FormatUint(uint64(t.ID), 10),
			t.Name,
			address,
			t.Passport,
			formatDate(t.PassportValidity),
			t.AadharNo,
			t.EmploymentDetails,
			t.PermanentAddress,
			t.ContactNo,
			t.EmergencyContactNo,
			formatAmount(t.Rent),
			formatAmount(t.Security),
			formatDate(t.MoveInDate),
			formatDate(t.ContractStartDate),
			formatDate(t.ContractExpiryDate),
			t.CreatedDate.Format(time.RFC3339),
		}
	}
	return rows, nil
}

func (r *Reports) transactionRows() ([][]string, error) {
	txs, err := r.store.ListAllTransactions()
	if err != nil {
		return nil, err
	}
	rows := make([][]string, len(txs))
	for i := range txs {
		view := txs[i].View()
		rows[i] = []string{
			strconv.FormatUint(uint64(view.ID), 10),
			view.PropertyAddress,
			view.TenantName,
			string(view.Type),
			view.ForMonth,
			formatAmount(view.Amount),
			view.TransactionDate.String(),
			view.Comments,
		}
	}
	return rows, nil
}

func formatDate(d *models.Date) string {
	if d == nil || d.IsZero() {
		return ""
	}
	return d.String()
}

func formatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

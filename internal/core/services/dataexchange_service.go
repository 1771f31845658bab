package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/M-Vasconez/fin/internal/apperrors"
	"github.com/M-Vasconez/fin/internal/core/domain"
	portsrepo "github.com/M-Vasconez/fin/internal/core/ports/repositories"
	portssvc "github.com/M-Vasconez/fin/internal/core/ports/services"
	"github.com/M-Vasconez/fin/internal/dto"
	"github.com/M-Vasconez/fin/internal/utils/csvutil"
)

// MaxImportFileSize caps a single uploaded CSV file.
const MaxImportFileSize = 2 << 20

const csvDateLayout = "2006-01-02"

// Required import columns per data type. Extra columns are ignored.
var (
	accountImportColumns     = []string{"id", "name", "type", "balance"}
	transactionImportColumns = []string{"id", "amount", "description", "date", "type"}
	categoryImportColumns    = []string{"id", "name", "type"}
	templateImportColumns    = []string{"id", "name", "category"}
)

// dataExchangeService implements CSV export and the multi-file import batch.
type dataExchangeService struct {
	BaseService
	accountRepo     portsrepo.AccountRepository
	transferRepo    portsrepo.TransferRepositoryWithTx
	goalRepo        portsrepo.GoalRepository
	templateRepo    portsrepo.TemplateRepository
	transactionRepo portsrepo.TransactionRepository
	now             func() time.Time
}

// NewDataExchangeService creates a new data exchange service.
func NewDataExchangeService(repos *portsrepo.RepositoryProvider) portssvc.DataExchangeSvcFacade {
	return &dataExchangeService{
		accountRepo:     repos.AccountRepo,
		transferRepo:    repos.TransferRepo,
		goalRepo:        repos.GoalRepo,
		templateRepo:    repos.TemplateRepo,
		transactionRepo: repos.TransactionRepo,
		now:             time.Now,
	}
}

// ExportCSV serializes one data type to CSV and returns the suggested file
// name stamped with today's date.
func (s *dataExchangeService) ExportCSV(ctx context.Context, dataType string) (string, []byte, error) {
	var header []string
	var rows [][]string

	switch dataType {
	case "accounts":
		accounts, err := s.accountRepo.ListAccounts(ctx)
		if err != nil {
			return "", nil, fmt.Errorf("failed to list accounts for export: %w", err)
		}
		header = []string{"id", "name", "type", "balance", "account_number", "description", "is_active"}
		for _, a := range accounts {
			rows = append(rows, []string{
				a.AccountID, a.Name, string(a.AccountType), a.Balance.String(),
				a.AccountNumber, a.Description, strconv.FormatBool(a.IsActive),
			})
		}
	case "transactions":
		transactions, err := s.transactionRepo.ListTransactionsInRange(ctx, allTimeStart, allTimeEnd)
		if err != nil {
			return "", nil, fmt.Errorf("failed to list transactions for export: %w", err)
		}
		header = []string{"id", "amount", "description", "date", "type", "category", "payment_method"}
		for _, t := range transactions {
			rows = append(rows, []string{
				t.TransactionID, t.Amount.String(), t.Description,
				t.Date.Format(csvDateLayout), string(t.Type), t.Category, string(t.PaymentMethod),
			})
		}
	case "transfers":
		transfers, err := s.transferRepo.ListTransfers(ctx)
		if err != nil {
			return "", nil, fmt.Errorf("failed to list transfers for export: %w", err)
		}
		header = []string{"id", "from_account_id", "to_account_id", "amount", "fee", "description", "date"}
		for _, t := range transfers {
			rows = append(rows, []string{
				t.TransferID, t.FromAccountID, t.ToAccountID, t.Amount.String(),
				t.Fee.String(), t.Description, t.Date.Format(csvDateLayout),
			})
		}
	case "goals":
		goals, err := s.goalRepo.ListGoals(ctx)
		if err != nil {
			return "", nil, fmt.Errorf("failed to list goals for export: %w", err)
		}
		header = []string{"id", "name", "description", "target_amount", "current_amount", "target_date", "category", "account_id"}
		for _, g := range goals {
			rows = append(rows, []string{
				g.GoalID, g.Name, g.Description, g.TargetAmount.String(),
				g.CurrentAmount.String(), g.TargetDate.Format(csvDateLayout),
				string(g.Category), g.AccountID,
			})
		}
	case "categories":
		header = []string{"id", "name", "type"}
		categories, err := s.collectCategories(ctx)
		if err != nil {
			return "", nil, err
		}
		rows = categories
	case "templates":
		templates, err := s.templateRepo.ListTemplates(ctx, false)
		if err != nil {
			return "", nil, fmt.Errorf("failed to list templates for export: %w", err)
		}
		header = []string{"id", "name", "description", "amount", "category", "payment_method", "is_active"}
		for _, t := range templates {
			amount := ""
			if t.Amount != nil {
				amount = t.Amount.String()
			}
			rows = append(rows, []string{
				t.TemplateID, t.Name, t.Description, amount,
				t.Category, string(t.PaymentMethod), strconv.FormatBool(t.IsActive),
			})
		}
	default:
		return "", nil, fmt.Errorf("unknown export type %q: %w", dataType, apperrors.ErrValidation)
	}

	var buf bytes.Buffer
	if err := csvutil.WriteTable(&buf, header, rows); err != nil {
		return "", nil, fmt.Errorf("failed to serialize %s export: %w", dataType, err)
	}

	fileName := fmt.Sprintf("%s_%s.csv", dataType, s.now().Format(csvDateLayout))
	s.LogInfo(ctx, "export generated", slog.String("type", dataType), slog.Int("rows", len(rows)))
	return fileName, buf.Bytes(), nil
}

// collectCategories derives the category list from stored transactions and
// templates; categories have no table of their own.
func (s *dataExchangeService) collectCategories(ctx context.Context) ([][]string, error) {
	transactions, err := s.transactionRepo.ListTransactionsInRange(ctx, allTimeStart, allTimeEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for export: %w", err)
	}
	templates, err := s.templateRepo.ListTemplates(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates for export: %w", err)
	}

	type categoryKey struct {
		name   string
		txType domain.TransactionType
	}
	seen := make(map[categoryKey]struct{})
	for _, t := range transactions {
		if t.Category != "" {
			seen[categoryKey{t.Category, t.Type}] = struct{}{}
		}
	}
	for _, t := range templates {
		if t.Category != "" {
			seen[categoryKey{t.Category, domain.Expense}] = struct{}{}
		}
	}

	rows := make([][]string, 0, len(seen))
	for key := range seen {
		id := strings.ToLower(strings.ReplaceAll(key.name, " ", "-"))
		rows = append(rows, []string{id, key.name, string(key.txType)})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i][1] != rows[j][1] {
			return rows[i][1] < rows[j][1]
		}
		return rows[i][2] < rows[j][2]
	})
	return rows, nil
}

// ImportFiles processes a batch of uploaded CSV files. Files are routed by
// name substring and handled independently; one bad file is reported in its
// own result and never aborts the rest.
func (s *dataExchangeService) ImportFiles(ctx context.Context, files []dto.ImportFile) (*dto.ImportSummary, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no files provided: %w", apperrors.ErrValidation)
	}

	summary := &dto.ImportSummary{Results: make([]dto.FileImportResult, 0, len(files))}
	for _, file := range files {
		result := s.importOne(ctx, file)
		if result.Success {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
		summary.Results = append(summary.Results, result)
	}

	s.LogInfo(ctx, "import batch finished",
		slog.Int("succeeded", summary.Succeeded),
		slog.Int("failed", summary.Failed))
	return summary, nil
}

func (s *dataExchangeService) importOne(ctx context.Context, file dto.ImportFile) dto.FileImportResult {
	result := dto.FileImportResult{FileName: file.Name}

	if !strings.HasSuffix(strings.ToLower(file.Name), ".csv") {
		result.Message = "not a CSV file"
		return result
	}

	dataType, ok := classifyImportFile(file.Name)
	if !ok {
		result.Message = "unrecognized file name; expected it to mention transactions, accounts, categories or templates"
		return result
	}
	result.Type = dataType

	if len(file.Data) > MaxImportFileSize {
		result.Message = fmt.Sprintf("file exceeds the %d byte limit", MaxImportFileSize)
		return result
	}

	var count int
	var err error
	switch dataType {
	case "transactions":
		count, err = s.importTransactions(ctx, file.Data)
	case "accounts":
		count, err = s.importAccounts(ctx, file.Data)
	case "categories":
		count, err = validateRows(file.Data, categoryImportColumns)
	case "templates":
		count, err = validateRows(file.Data, templateImportColumns)
	}
	if err != nil {
		result.Message = err.Error()
		return result
	}

	result.Success = true
	result.Count = count
	result.Message = fmt.Sprintf("imported %d %s", count, dataType)
	return result
}

// classifyImportFile routes a file by name substring, transactions first so
// a name mentioning both resolves deterministically.
func classifyImportFile(name string) (string, bool) {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "transaction"):
		return "transactions", true
	case strings.Contains(lower, "account"):
		return "accounts", true
	case strings.Contains(lower, "categor"):
		return "categories", true
	case strings.Contains(lower, "template"):
		return "templates", true
	default:
		return "", false
	}
}

func (s *dataExchangeService) importTransactions(ctx context.Context, data []byte) (int, error) {
	header, rows, err := csvutil.ParseTable(data)
	if err != nil {
		return 0, err
	}
	index, err := csvutil.IndexColumns(header, transactionImportColumns)
	if err != nil {
		return 0, err
	}

	transactions := make([]domain.Transaction, 0, len(rows))
	for i, row := range rows {
		amount, err := decimal.NewFromString(row[index["amount"]])
		if err != nil {
			return 0, fmt.Errorf("row %d: invalid amount %q", i+2, row[index["amount"]])
		}
		date, err := parseCSVDate(row[index["date"]])
		if err != nil {
			return 0, fmt.Errorf("row %d: invalid date %q", i+2, row[index["date"]])
		}
		txType := domain.TransactionType(row[index["type"]])
		if txType != domain.Income && txType != domain.Expense {
			return 0, fmt.Errorf("row %d: invalid type %q", i+2, row[index["type"]])
		}
		txn := domain.Transaction{
			TransactionID: row[index["id"]],
			Amount:        amount,
			Description:   row[index["description"]],
			Date:          date,
			Type:          txType,
		}
		if col, ok := index["category"]; ok {
			txn.Category = row[col]
		}
		if col, ok := index["payment_method"]; ok {
			txn.PaymentMethod = domain.AccountType(row[col])
		}
		transactions = append(transactions, txn)
	}

	if err := s.transactionRepo.ReplaceAllTransactions(ctx, transactions); err != nil {
		s.LogError(ctx, err, "failed to replace transactions", slog.Int("count", len(transactions)))
		return 0, fmt.Errorf("failed to store transactions: %w", err)
	}
	return len(transactions), nil
}

func (s *dataExchangeService) importAccounts(ctx context.Context, data []byte) (int, error) {
	header, rows, err := csvutil.ParseTable(data)
	if err != nil {
		return 0, err
	}
	index, err := csvutil.IndexColumns(header, accountImportColumns)
	if err != nil {
		return 0, err
	}

	now := s.now()
	accounts := make([]domain.Account, 0, len(rows))
	for i, row := range rows {
		balance, err := decimal.NewFromString(row[index["balance"]])
		if err != nil {
			return 0, fmt.Errorf("row %d: invalid balance %q", i+2, row[index["balance"]])
		}
		account := domain.Account{
			AccountID:   row[index["id"]],
			Name:        row[index["name"]],
			AccountType: domain.AccountType(row[index["type"]]),
			Balance:     balance,
			IsActive:    true,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     domain.DefaultUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: domain.DefaultUserID,
			},
		}
		if account.AccountID == "" || account.Name == "" {
			return 0, fmt.Errorf("row %d: missing id or name", i+2)
		}
		if col, ok := index["account_number"]; ok {
			account.AccountNumber = row[col]
		}
		if col, ok := index["description"]; ok {
			account.Description = row[col]
		}
		if col, ok := index["is_active"]; ok {
			active, err := strconv.ParseBool(row[col])
			if err == nil {
				account.IsActive = active
			}
		}
		accounts = append(accounts, account)
	}

	// Replacing accounts clears transfer history in the same database
	// transaction; stale transfers would reference deleted accounts.
	if err := s.accountRepo.ReplaceAllAccounts(ctx, accounts); err != nil {
		s.LogError(ctx, err, "failed to replace accounts", slog.Int("count", len(accounts)))
		return 0, fmt.Errorf("failed to store accounts: %w", err)
	}
	return len(accounts), nil
}

// validateRows checks structure only. Categories and templates are validated
// and counted but not persisted; their collections are managed in-app.
func validateRows(data []byte, required []string) (int, error) {
	header, rows, err := csvutil.ParseTable(data)
	if err != nil {
		return 0, err
	}
	if _, err := csvutil.IndexColumns(header, required); err != nil {
		return 0, err
	}
	return len(rows), nil
}

func parseCSVDate(value string) (time.Time, error) {
	if t, err := time.Parse(csvDateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

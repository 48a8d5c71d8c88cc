package postgre

import (
	"database/sql"
	"fmt"
	"strings"

	"campaign-srv/internal/model"
	"campaign-srv/internal/provisioning/repository"
)

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// buildRunsWhere builds the WHERE clause for GetRuns filters
func buildRunsWhere(opt repository.GetRunsOptions) (string, []any) {
	conds := []string{}
	args := []any{}

	if opt.CustomerID != "" {
		args = append(args, opt.CustomerID)
		conds = append(conds, fmt.Sprintf("customer_id = $%d", len(args)))
	}

	if opt.Status != "" {
		args = append(args, opt.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}

// buildRunsLimit builds the LIMIT/OFFSET clause continuing the placeholder sequence
func buildRunsLimit(_ repository.GetRunsOptions, argCount int) string {
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", argCount+1, argCount+2)
}

func scanRun(row rowScanner) (model.ProvisioningRun, error) {
	var (
		run              model.ProvisioningRun
		failedStep       sql.NullString
		errorMessage     sql.NullString
		budgetResource   sql.NullString
		campaignResource sql.NullString
		adGroupResource  sql.NullString
		reportURL        sql.NullString
		startedAt        sql.NullTime
		completedAt      sql.NullTime
	)

	err := row.Scan(
		&run.ID, &run.CustomerID, &run.Mode, &run.Status,
		&failedStep, &errorMessage,
		&budgetResource, &campaignResource, &adGroupResource,
		&run.AdsCreated, &run.KeywordsCreated,
		&reportURL, &run.RequestedBy,
		&startedAt, &completedAt,
		&run.CreatedAt, &run.UpdatedAt,
	)
	if err != nil {
		return model.ProvisioningRun{}, err
	}

	run.FailedStep = failedStep.String
	run.ErrorMessage = errorMessage.String
	run.BudgetResource = budgetResource.String
	run.CampaignResource = campaignResource.String
	run.AdGroupResource = adGroupResource.String
	run.ReportURL = reportURL.String
	if startedAt.Valid {
		run.StartedAt = &startedAt.Time
	}
	if completedAt.Valid {
		run.CompletedAt = &completedAt.Time
	}

	return run, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

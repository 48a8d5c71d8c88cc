package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"campaign-srv/internal/model"
	"campaign-srv/internal/provisioning"
	"campaign-srv/pkg/minio"
)

// uploadReport writes the run report to object storage and returns a
// presigned download URL. Report upload is best effort, a storage failure
// never changes the outcome of a run.
func (uc *implUseCase) uploadReport(ctx context.Context, run model.ProvisioningRun, resources []model.ProvisionedResource) string {
	report := provisioning.RunReport{
		RunID:       run.ID,
		CustomerID:  run.CustomerID,
		Mode:        run.Mode,
		Status:      run.Status,
		FailedStep:  run.FailedStep,
		Error:       run.ErrorMessage,
		Resources:   resources,
		StartedAt:   run.StartedAt,
		CompletedAt: run.CompletedAt,
		GeneratedAt: time.Now(),
	}
	if report.Resources == nil {
		report.Resources = []model.ProvisionedResource{}
	}

	data, err := json.Marshal(report)
	if err != nil {
		uc.l.Errorf(ctx, "provisioning.usecase.uploadReport: failed to encode report for run %s: %v", run.ID, err)
		return ""
	}

	objectName := fmt.Sprintf("runs/%s/report.json", run.ID)
	if _, err := uc.minio.UploadJSON(ctx, &minio.UploadRequest{
		BucketName: uc.cfg.ReportBucket,
		ObjectName: objectName,
		Data:       data,
		Metadata: map[string]string{
			"customer-id": run.CustomerID,
			"run-mode":    run.Mode,
		},
	}); err != nil {
		uc.l.Warnf(ctx, "provisioning.usecase.uploadReport: failed to upload report for run %s: %v", run.ID, err)
		return ""
	}

	reportURL, err := uc.minio.GetPresignedDownloadURL(ctx, uc.cfg.ReportBucket, objectName, uc.cfg.ReportExpiry)
	if err != nil {
		uc.l.Warnf(ctx, "provisioning.usecase.uploadReport: failed to presign report for run %s: %v", run.ID, err)
		return ""
	}

	return reportURL
}

// internal/core/usecases/verification_stage.go
package usecases

import (
	"context"

	"depboot/internal/core/domain"
	"depboot/internal/core/ports"
	"depboot/internal/platform/logx"
	"depboot/internal/platform/ui"
)

// VerificationStage imports every requirement once more in a fresh process,
// after all installs are done. It never installs.
type VerificationStage struct {
	importer ports.Importer
	reporter ports.Reporter
	logger   logx.Logger
}

// VerificationStageOptions configures a VerificationStage.
type VerificationStageOptions struct {
	Importer ports.Importer
	Reporter ports.Reporter
	Logger   logx.Logger
}

// NewVerificationStage creates a verification stage.
func NewVerificationStage(opts VerificationStageOptions) *VerificationStage {
	if opts.Reporter == nil {
		opts.Reporter = ui.NewNoopReporter()
	}
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	return &VerificationStage{
		importer: opts.Importer,
		reporter: opts.Reporter,
		logger:   opts.Logger.With("component", "verification_stage"),
	}
}

// Verify imports each requirement and reports whether all succeeded.
func (v *VerificationStage) Verify(ctx context.Context, reqs []domain.Requirement) (bool, []domain.VerificationResult) {
	results := make([]domain.VerificationResult, 0, len(reqs))
	rows := make([][]string, 0, len(reqs))
	allOK := true

	for i, req := range reqs {
		v.reporter.Progress(i+1, len(reqs), "Importing "+req.ImportPath())

		res := v.importer.Import(ctx, req)
		res.Name = req.Name
		if !res.OK {
			allOK = false
			v.logger.Warn("import failed", "name", req.Name, "module", req.ImportPath(), "detail", res.Detail)
		}

		results = append(results, res)
		rows = append(rows, []string{req.Name, verdict(res.OK), res.Detail})
	}

	v.reporter.Table([]string{"Library", "Result", "Detail"}, rows, "Import check results")
	return allOK, results
}

func verdict(ok bool) string {
	if ok {
		return "OK"
	}
	return "FAILED"
}

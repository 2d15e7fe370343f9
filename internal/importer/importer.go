package importer

import (
	"time"

	"github.com/shopspring/decimal"

	"printbulk/internal/config"
	"printbulk/internal/logger"
	"printbulk/internal/models"
	"printbulk/internal/spreadsheet"
)

// Importer drives one batch run: load rows, group them, upload artwork
// per row, create one product per group. Strictly sequential.
type Importer struct {
	cfg       *config.Config
	logger    *logger.Logger
	reader    *spreadsheet.Reader
	uploader  *Uploader
	submitter *Submitter

	// DryRun loads, validates and groups the input and logs what would
	// happen without making any remote call.
	DryRun bool
}

func New(cfg *config.Config, log *logger.Logger, registrar FileRegistrar, creator ProductCreator) *Importer {
	return &Importer{
		cfg:       cfg,
		logger:    log,
		reader:    spreadsheet.New(log),
		uploader:  NewUploader(registrar, cfg.UploadRetries, time.Duration(cfg.UploadRetryDelay)*time.Second, log),
		submitter: NewSubmitter(creator, log),
	}
}

// Run processes one input file end to end. Only load-time problems make
// it back to the caller; row and group failures are logged and contained.
func (i *Importer) Run(path string) error {
	rows, err := i.reader.Load(path)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		i.logger.Info("No valid rows found in %s, nothing to do", path)
		return nil
	}

	groups := models.GroupRows(rows)
	i.logger.Info("Loaded %d row(s) in %d product group(s) from %s", len(rows), len(groups), path)

	for _, group := range groups {
		i.processGroup(group)
	}

	return nil
}

func (i *Importer) processGroup(group models.ProductGroup) {
	if i.DryRun {
		i.logDryRun(group)
		return
	}

	var variants []models.VariantSubmission
	for _, row := range group.Rows {
		variant, err := i.prepareVariant(row)
		if err != nil {
			i.logger.Error("Skipping variant in product '%s' (line %d): %v", group.Key.ProductName, row.SourceLine, err)
			continue
		}
		variants = append(variants, variant)
	}

	if len(variants) == 0 {
		i.logger.Error("Skipping product '%s' because no valid variants could be prepared", group.Key.ProductName)
		return
	}

	i.submitter.Submit(group.Key.ProductName, group.Key.ProductID, variants)
}

// prepareVariant uploads the row's artwork. Any upload failure discards
// the whole row; partial file sets are never submitted.
func (i *Importer) prepareVariant(row models.Row) (models.VariantSubmission, error) {
	frontID, err := i.uploader.Upload(row.FrontDesign)
	if err != nil {
		return models.VariantSubmission{}, err
	}

	backID, err := i.uploader.Upload(row.BackDesign)
	if err != nil {
		return models.VariantSubmission{}, err
	}

	var labelID int64
	if row.HasLabel() {
		labelID, err = i.uploader.Upload(row.InsideLabel)
		if err != nil {
			return models.VariantSubmission{}, err
		}
	}

	return models.VariantSubmission{
		VariantID:   row.VariantID,
		FrontFileID: frontID,
		BackFileID:  backID,
		LabelFileID: labelID,
		RetailPrice: i.retailPrice(row),
	}, nil
}

// retailPrice normalizes the row's price to two decimal places, falling
// back to the configured default when blank or malformed.
func (i *Importer) retailPrice(row models.Row) string {
	if row.RetailPrice == "" {
		return i.cfg.DefaultRetailPrice
	}

	price, err := decimal.NewFromString(row.RetailPrice)
	if err != nil {
		i.logger.Error("Invalid retail price %q on line %d, using default %s", row.RetailPrice, row.SourceLine, i.cfg.DefaultRetailPrice)
		return i.cfg.DefaultRetailPrice
	}

	return price.StringFixed(2)
}

func (i *Importer) logDryRun(group models.ProductGroup) {
	i.logger.Info("[dry-run] Would create product '%s' (template %d) with %d variant(s)",
		group.Key.ProductName, group.Key.ProductID, len(group.Rows))
	for _, row := range group.Rows {
		label := "none"
		if row.HasLabel() {
			label = row.InsideLabel
		}
		i.logger.Info("[dry-run]   variant %d: front=%s back=%s label=%s price=%s",
			row.VariantID, row.FrontDesign, row.BackDesign, label, i.retailPrice(row))
	}
}

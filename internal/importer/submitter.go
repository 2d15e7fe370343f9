package importer

import (
	"fmt"

	"printbulk/internal/logger"
	"printbulk/internal/models"
	"printbulk/internal/services/printful"
)

// ProductCreator is the single remote call the submitter needs.
type ProductCreator interface {
	CreateProduct(req *printful.CreateProductRequest) (*printful.CreateProductResponse, error)
}

// Submitter turns a group's prepared variants into one product-creation
// call. There is no retry at this layer.
type Submitter struct {
	creator ProductCreator
	logger  *logger.Logger
}

func NewSubmitter(creator ProductCreator, logger *logger.Logger) *Submitter {
	return &Submitter{
		creator: creator,
		logger:  logger,
	}
}

// Submit issues exactly one creation call for the group and returns the
// decoded response. A failed creation is logged, including the response
// body carried in the error, and yields nil so later groups keep
// processing.
func (s *Submitter) Submit(productName string, templateID int64, variants []models.VariantSubmission) *printful.CreateProductResponse {
	req := buildCreateRequest(productName, templateID, variants)

	s.logger.Info("Creating product '%s' with %d variant(s)...", productName, len(variants))
	resp, err := s.creator.CreateProduct(req)
	if err != nil {
		s.logger.Error("Failed to create product '%s': %v", productName, err)
		return nil
	}

	s.logger.Info("Product created: %s (ID: %d)", productName, resp.Result.ID)
	return resp
}

func buildCreateRequest(productName string, templateID int64, variants []models.VariantSubmission) *printful.CreateProductRequest {
	syncVariants := make([]printful.SyncVariant, 0, len(variants))
	for _, v := range variants {
		files := []printful.FileRef{
			{Type: "front", ID: v.FrontFileID},
			{Type: "back", ID: v.BackFileID},
		}
		if v.LabelFileID != 0 {
			files = append(files, printful.FileRef{Type: "inside_label", ID: v.LabelFileID})
		}

		syncVariants = append(syncVariants, printful.SyncVariant{
			VariantID:   v.VariantID,
			RetailPrice: v.RetailPrice,
			Files:       files,
		})
	}

	return &printful.CreateProductRequest{
		SyncProduct: printful.SyncProduct{
			Name:       productName,
			IsVisible:  true,
			ExternalID: fmt.Sprintf("%s-%d", productName, templateID),
		},
		SyncVariants: syncVariants,
	}
}

package usecase

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/internal/domain/query"
	"hotel_procurement/internal/domain/reconciliation"
	"hotel_procurement/internal/domain/workflow"
	"hotel_procurement/internal/infrastructure/logging"
	"hotel_procurement/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const registryLockTTL = 30 * time.Second

// IInvoiceUseCase splits reconciliation into a side-effect free preview and
// an explicit confirmation that commits it.
type IInvoiceUseCase interface {
	Preview(ctx context.Context, actor entities.User, requestID string, file FileUpload) (entities.InvoicePreview, error)
	Confirm(ctx context.Context, actor entities.User, requestID, previewID string) (RequestView, error)
}

type InvoiceUseCaseConfig struct {
	AITimeout  time.Duration
	PreviewTTL time.Duration
}

type InvoiceUseCase struct {
	requests  interfaces.IPurchaseRequestRepository
	catalog   interfaces.ICatalogRepository
	suppliers interfaces.ISupplierRepository
	commits   interfaces.IReconciliationRepository
	previews  interfaces.IPreviewStore
	blobs     interfaces.IBlobStore
	locker    interfaces.IKeyLocker
	analyzer  interfaces.IInvoiceAnalyzer
	events    interfaces.IEventPublisher
	engine    *workflow.Engine
	cfg       InvoiceUseCaseConfig
	now       func() time.Time
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

type InvoiceDeps struct {
	Requests  interfaces.IPurchaseRequestRepository
	Catalog   interfaces.ICatalogRepository
	Suppliers interfaces.ISupplierRepository
	Commits   interfaces.IReconciliationRepository
	Previews  interfaces.IPreviewStore
	Blobs     interfaces.IBlobStore
	Locker    interfaces.IKeyLocker
	Analyzer  interfaces.IInvoiceAnalyzer
	Events    interfaces.IEventPublisher
}

func NewInvoiceUseCase(deps InvoiceDeps, engine *workflow.Engine, cfg InvoiceUseCaseConfig) *InvoiceUseCase {
	return &InvoiceUseCase{
		requests:  deps.Requests,
		catalog:   deps.Catalog,
		suppliers: deps.Suppliers,
		commits:   deps.Commits,
		previews:  deps.Previews,
		blobs:     deps.Blobs,
		locker:    deps.Locker,
		analyzer:  deps.Analyzer,
		events:    deps.Events,
		engine:    engine,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Preview runs extraction and the price checks and parks the result. The
// catalog, supplier registry and request are left untouched.
func (u *InvoiceUseCase) Preview(ctx context.Context, actor entities.User, requestID string, file FileUpload) (entities.InvoicePreview, error) {
	if len(file.Data) == 0 {
		return entities.InvoicePreview{}, entities.Validationf("invoice document is empty")
	}
	if !entities.IsInvoiceDocumentType(file.MimeType) {
		return entities.InvoicePreview{}, entities.Validationf("unsupported invoice document type %q, upload an image or PDF", file.MimeType)
	}
	r, err := u.loadForInvoice(ctx, actor, requestID)
	if err != nil {
		return entities.InvoicePreview{}, err
	}

	known, err := u.requests.InvoiceNumbersByBranch(ctx, r.Branch.ID)
	if err != nil {
		return entities.InvoicePreview{}, err
	}

	result, err := callExternal(ctx, u.cfg.AITimeout, "invoice-analyzer", func(ctx context.Context) (reconciliation.AnalysisResult, error) {
		return u.analyzer.Analyze(ctx, file.Data, file.MimeType, known)
	})
	if err != nil {
		logging.LogError("invoices", "Preview", "analyze invoice", r.ID, err)
		return entities.InvoicePreview{}, err
	}
	if err := reconciliation.ValidateExtraction(result.ExtractedData); err != nil {
		return entities.InvoicePreview{}, entities.ExternalServiceError("invoice-analyzer", err)
	}

	items, err := u.catalog.GetByKeys(ctx, reconciliation.ItemNames(result.ExtractedData))
	if err != nil {
		return entities.InvoicePreview{}, err
	}

	now := u.now().UTC()
	p := entities.InvoicePreview{
		ID:             uuid.NewString(),
		RequestID:      r.ID,
		RequestVersion: r.Version,
		CreatedBy:      actor.Snapshot(),
		Analysis:       reconciliation.Augment(result, reconciliation.NewCatalogIndex(items)),
		FileName:       strings.TrimSpace(path.Base(file.FileName)),
		MimeType:       file.MimeType,
		Document:       file.Data,
		CreatedAt:      now,
		ExpiresAt:      now.Add(u.cfg.PreviewTTL),
	}
	if err := u.previews.Save(ctx, p, u.cfg.PreviewTTL); err != nil {
		return entities.InvoicePreview{}, err
	}

	logging.GetLogger().WithFields(logrus.Fields{
		"request_id": r.ID,
		"preview_id": p.ID,
		"actor_id":   actor.ID,
		"duplicate":  p.Analysis.DuplicateCheck.IsDuplicate,
	}).Info("[invoices][usecase] invoice preview created")
	return p, nil
}

// Confirm commits a preview: registry keys are locked, the catalog check is
// recomputed against current state, the document is stored and catalog,
// supplier and request are written as one unit. The preview is dropped only
// after the commit succeeds.
func (u *InvoiceUseCase) Confirm(ctx context.Context, actor entities.User, requestID, previewID string) (RequestView, error) {
	p, err := u.previews.Get(ctx, strings.TrimSpace(previewID))
	if err != nil {
		return RequestView{}, err
	}
	if p.RequestID != strings.TrimSpace(requestID) {
		return RequestView{}, entities.NotFoundf("invoice preview %s for request %s", previewID, requestID)
	}

	r, err := u.loadForInvoice(ctx, actor, requestID)
	if err != nil {
		return RequestView{}, err
	}
	if r.Version != p.RequestVersion {
		return RequestView{}, entities.Conflictf("request %s changed since the invoice preview was created", r.ID)
	}

	extracted := p.Analysis.ExtractedData
	release, err := u.locker.Lock(ctx, reconciliation.LockKeys(extracted), registryLockTTL)
	if err != nil {
		return RequestView{}, err
	}
	defer release()

	items, err := u.catalog.GetByKeys(ctx, reconciliation.ItemNames(extracted))
	if err != nil {
		return RequestView{}, err
	}
	index := reconciliation.NewCatalogIndex(items)
	existing, err := u.suppliers.Get(ctx, extracted.VendorName)
	if err != nil {
		return RequestView{}, err
	}

	analysis := p.Analysis
	analysis.InternalPriceCheck = reconciliation.InternalPriceCheck(extracted.Items, index)
	catalogChanges := reconciliation.MergeCatalog(extracted.Items, index)
	supplier := reconciliation.MergeSupplier(existing, extracted.VendorName, r.Branch.ID, extracted.SalesRepresentative)

	invoiceID := uuid.NewString()
	uri, err := u.blobs.Put(ctx, fmt.Sprintf("requests/%s/invoices/%s-%s", r.ID, invoiceID, p.FileName), p.Document, p.MimeType)
	if err != nil {
		return RequestView{}, err
	}

	from := r.Status
	invoice := entities.Invoice{
		ID:            invoiceID,
		VendorName:    extracted.VendorName,
		InvoiceNumber: extracted.InvoiceNumber,
		InvoiceDate:   extracted.InvoiceDate,
		TotalAmount:   extracted.TotalAmount,
		FileURI:       uri,
		FileMimeType:  p.MimeType,
		Analysis:      analysis,
		ProcessedAt:   u.now().UTC(),
	}
	if err := u.engine.ProcessInvoice(r, actor, invoice); err != nil {
		u.discardBlob(ctx, uri)
		return RequestView{}, err
	}

	err = u.commits.Commit(ctx, interfaces.ReconciliationCommit{
		Request:  r,
		Catalog:  catalogChanges,
		Supplier: supplier,
	})
	if err != nil {
		u.discardBlob(ctx, uri)
		logging.LogError("invoices", "Confirm", "commit reconciliation", r.ID, err)
		return RequestView{}, err
	}

	if err := u.previews.Delete(ctx, p.ID); err != nil {
		logging.LogError("invoices", "Confirm", "delete preview", p.ID, err)
	}
	publishTransition(ctx, u.events, r, from)

	logging.GetLogger().WithFields(logrus.Fields{
		"request_id":      r.ID,
		"actor_id":        actor.ID,
		"catalog_changes": len(catalogChanges),
		"supplier":        supplier.Name,
	}).Info("[invoices][usecase] invoice reconciled")
	return viewOf(r, actor), nil
}

func (u *InvoiceUseCase) loadForInvoice(ctx context.Context, actor entities.User, requestID string) (*entities.PurchaseRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, entities.Validationf("request id is required")
	}
	r, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !query.Visible(r, actor) {
		return nil, entities.NotFoundf("request %s", requestID)
	}
	if r.Status != entities.StatusPendingInvoice {
		return nil, entities.InvalidTransitionf("request %s is not awaiting an invoice (status %s)", r.ID, r.Status)
	}
	if !workflow.CanAct(r.Status, actor.Role) {
		return nil, entities.Authorizationf("role %s cannot process invoices", actor.Role)
	}
	return r, nil
}

func (u *InvoiceUseCase) discardBlob(ctx context.Context, uri string) {
	if err := u.blobs.Delete(ctx, uri); err != nil {
		logging.LogError("invoices", "discardBlob", "cleanup invoice document", uri, err)
	}
}

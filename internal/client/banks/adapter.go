package banksclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/rotisserie/eris"

	"github.com/GregMSThompson/banks-directory/internal/dto"
	"github.com/GregMSThompson/banks-directory/internal/errs"
	"github.com/GregMSThompson/banks-directory/internal/models"
	"github.com/GregMSThompson/banks-directory/pkg/helpers"
	"github.com/GregMSThompson/banks-directory/pkg/logger"
)

type Adapter struct {
	client   *http.Client
	url      string
	validate *validator.Validate
}

// NewAdapter returns a fetch client for the directory at url. A nil client
// means http.DefaultClient, so no timeout is applied beyond its defaults.
func NewAdapter(client *http.Client, url string) *Adapter {
	if client == nil {
		client = http.DefaultClient
	}
	return &Adapter{
		client:   client,
		url:      url,
		validate: validator.New(),
	}
}

// Fetch downloads and parses the whole directory in one GET.
func (a *Adapter) Fetch(ctx context.Context) ([]models.Bank, error) {
	log := logger.FromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.url, nil)
	if err != nil {
		return nil, errs.NewFetchError(errs.FetchTransport, "building request", eris.Wrap(err, "new request"))
	}
	req.Header.Set("Accept", "application/json")

	log.Debug("requesting bank directory", "url", a.url)
	resp, err := a.client.Do(req)
	if err != nil {
		return nil, errs.NewFetchError(errs.FetchTransport, "requesting bank directory", eris.Wrap(err, "sending request"))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, errs.NewFetchError(errs.FetchStatus, "requesting bank directory",
			eris.Errorf("unexpected status %d", resp.StatusCode))
	}

	banks, err := a.Decode(resp.Body)
	if err != nil {
		return nil, err
	}

	log.Debug("bank directory parsed", "count", len(banks))
	return banks, nil
}

// Decode parses a banks.json body. Order is preserved; any invalid element
// fails the whole collection.
func (a *Adapter) Decode(r io.Reader) ([]models.Bank, error) {
	var payload []*dto.BankPayload
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, errs.NewFetchError(errs.FetchDecode, "decoding bank directory", eris.Wrap(err, "decoding body"))
	}
	if payload == nil {
		return nil, errs.NewFetchError(errs.FetchDecode, "decoding bank directory", eris.New("expected a JSON array, got null"))
	}

	banks := make([]models.Bank, 0, len(payload))
	seen := make(map[string]int, len(payload))
	for i, p := range payload {
		if p == nil {
			return nil, errs.NewFetchError(errs.FetchRecord, fmt.Sprintf("bank at index %d", i),
				eris.New("element is null"))
		}

		bank := models.Bank{
			BIC:             helpers.Value(p.BIC),
			Name:            helpers.Value(p.Name),
			NameInEnglish:   optionalText(p.NameInEnglish),
			RegistryNumber:  optionalText(p.RegistryNumber),
			AddressCombined: optionalText(p.AddressCombined),
		}
		if err := a.validate.Struct(bank); err != nil {
			return nil, errs.NewFetchError(errs.FetchRecord, fmt.Sprintf("bank at index %d", i),
				eris.Wrap(err, "missing required field"))
		}
		if first, dup := seen[bank.BIC]; dup {
			return nil, errs.NewFetchError(errs.FetchRecord, fmt.Sprintf("bank at index %d", i),
				eris.Errorf("bic %s already used at index %d", bank.BIC, first))
		}
		seen[bank.BIC] = i

		banks = append(banks, bank)
	}

	return banks, nil
}

// optionalText reads an optional field leniently. Numbers and booleans are
// kept as their literal text; null, "" and objects or arrays are absent.
func optionalText(raw json.RawMessage) *string {
	if len(raw) == 0 {
		return nil
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	switch t := v.(type) {
	case string:
		return helpers.OptionalString(&t)
	case float64:
		return helpers.Ptr(string(raw))
	case bool:
		return helpers.Ptr(strconv.FormatBool(t))
	default:
		return nil
	}
}

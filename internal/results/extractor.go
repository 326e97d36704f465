package results

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"beup-results/internal/telemetry"
	"beup-results/lib/restyutil"
	libtelemetry "beup-results/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = libtelemetry.Tracer("beup.internal.results")

const (
	DefaultUrlTemplate = "https://results.beup.ac.in/ResultsBTech1stSem2023_B2023Pub.aspx?Sem=I&RegNo={reg_no}"
	DefaultUserAgent   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"
	DefaultTimeout     = 10 * time.Second

	// RegNoPlaceholder is replaced with the registration number in the url template.
	RegNoPlaceholder = "{reg_no}"
)

// ErrFetch wraps every transport level failure (timeouts, dns, refused connections).
var ErrFetch = errors.New("failed to fetch result page")

// StatusError is returned when the portal responds with anything but a 200.
type StatusError struct {
	RegNo string
	Code  int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("result page for %s returned status %d", e.RegNo, e.Code)
}

type ExtractorOptions struct {
	UrlTemplate string
	UserAgent   string
	Timeout     time.Duration
	Anchors     Anchors
	// BypassCloudflare wraps the transport with cloudflare's bot check bypass.
	BypassCloudflare bool
	// Dump receives every http exchange when it is not nil.
	Dump restyutil.InstrumentOutput
}

// Extractor fetches and parses the result page of a single registration number.
type Extractor struct {
	http        *resty.Client
	urlTemplate string
	parser      Parser
	tel         telemetry.API
}

func NewExtractor(opts ExtractorOptions, tel telemetry.API) (Extractor, error) {
	if opts.UrlTemplate == "" {
		opts.UrlTemplate = DefaultUrlTemplate
	}
	if !strings.Contains(opts.UrlTemplate, RegNoPlaceholder) {
		return Extractor{}, fmt.Errorf("url template %q does not contain %s", opts.UrlTemplate, RegNoPlaceholder)
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Anchors.RegistrationNo == "" {
		opts.Anchors = DefaultAnchors()
	}

	client := resty.New()
	client.SetHeader("User-Agent", opts.UserAgent)
	client.SetTimeout(opts.Timeout)
	client.SetRetryCount(0)
	if opts.BypassCloudflare {
		transport := client.GetClient().Transport
		if transport == nil {
			transport = http.DefaultTransport
		}
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(transport)
	}

	libtelemetry.InstrumentResty(client, "beup.internal.results/http")
	restyutil.InstrumentClient(client, opts.Dump)

	return Extractor{
		http:        client,
		urlTemplate: opts.UrlTemplate,
		parser:      NewParser(opts.Anchors, tel),
		tel:         tel,
	}, nil
}

// Url returns the result page url of a registration number.
func (e Extractor) Url(regNo string) string {
	return strings.ReplaceAll(e.urlTemplate, RegNoPlaceholder, url.QueryEscape(regNo))
}

// Extract fetches the result page of regNo and parses it. there are no
// retries, any failure is final for this registration number.
func (e Extractor) Extract(ctx context.Context, regNo string) (Record, error) {
	ctx, span := tracer.Start(ctx, "Extract")
	defer span.End()
	span.SetAttributes(attribute.String("reg_no", regNo))

	res, err := e.http.R().
		SetContext(ctx).
		Get(e.Url(regNo))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return Record{}, fmt.Errorf("%w: %s: %w", ErrFetch, regNo, err)
	}
	if res.StatusCode() != http.StatusOK {
		span.SetStatus(codes.Error, "unexpected status code")
		return Record{}, &StatusError{RegNo: regNo, Code: res.StatusCode()}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return Record{}, err
	}

	record, err := e.parser.Parse(doc)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Record{}, err
	}
	return record, nil
}

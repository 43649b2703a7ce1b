package sams

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"

	"github.com/KuechlerO/simple-sams-api/internal/app/config"
	"github.com/KuechlerO/simple-sams-api/internal/app/contracts"
	"github.com/KuechlerO/simple-sams-api/internal/pkg/constvars"
	"github.com/KuechlerO/simple-sams-api/internal/pkg/exceptions"
	"github.com/KuechlerO/simple-sams-api/internal/pkg/sams_dto"
	"github.com/KuechlerO/simple-sams-api/internal/pkg/utils"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	samsClientInstance contracts.SamsClient
	onceSamsClient     sync.Once
)

// samsClient owns one cookie-bearing session against the SAMS CGI endpoints.
// It performs no retries and no caching; every call is a single blocking
// round-trip. A samsClient is not safe for concurrent use without external
// synchronization around the session.
type samsClient struct {
	BaseUrl    string
	HttpClient *http.Client
	Log        *zap.Logger
}

func NewSamsClient(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.SamsClient {
	onceSamsClient.Do(func() {
		samsClientInstance = newSamsClient(internalConfig.SAMS.BaseUrl, logger)
	})
	return samsClientInstance
}

func newSamsClient(baseUrl string, logger *zap.Logger) *samsClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	// cookiejar.New never fails without a public suffix list option.
	jar, _ := cookiejar.New(nil)
	return &samsClient{
		BaseUrl:    strings.TrimRight(baseUrl, "/"),
		HttpClient: &http.Client{Jar: jar},
		Log:        logger,
	}
}

func (c *samsClient) Login(ctx context.Context, username, password string) error {
	c.Log.Info("samsClient.Login called")

	form := url.Values{}
	form.Set(constvars.SamsFormFieldEmail, username)
	form.Set(constvars.SamsFormFieldPassword, password)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+constvars.SamsLoginPath, strings.NewReader(form.Encode()))
	if err != nil {
		c.Log.Error("samsClient.Login error creating HTTP request",
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		c.Log.Error("samsClient.Login error sending HTTP request",
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= constvars.StatusBadRequest {
		c.Log.Error("samsClient.Login rejected by SAMS",
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return exceptions.ErrSamsLoginFailed(resp.StatusCode)
	}

	// Success is signalled by the SAMSI cookie the jar picked up; the
	// response body is not parsed.
	c.Log.Info("samsClient.Login succeeded")
	return nil
}

func (c *samsClient) LoginWithProvider(ctx context.Context, provider contracts.CredentialsProvider) error {
	credentials, err := provider.Credentials()
	if err != nil {
		c.Log.Error("samsClient.LoginWithProvider error resolving credentials",
			zap.Error(err),
		)
		return err
	}

	if err := utils.ValidateStruct(credentials); err != nil {
		c.Log.Error("samsClient.LoginWithProvider error validating credentials",
			zap.Error(err),
		)
		return exceptions.ErrInputValidation(err)
	}

	return c.Login(ctx, credentials.Email, credentials.Password)
}

func (c *samsClient) LoginWithCredentialsFile(ctx context.Context, path string) error {
	return c.LoginWithProvider(ctx, CredentialsFromFile(path))
}

func (c *samsClient) IsLoggedIn() bool {
	base, err := url.Parse(c.BaseUrl)
	if err != nil {
		return false
	}
	for _, cookie := range c.HttpClient.Jar.Cookies(base) {
		if cookie.Name == constvars.SamsSessionCookieName {
			return true
		}
	}
	return false
}

func (c *samsClient) GetAllPhenopackets(ctx context.Context) ([]sams_dto.Phenopacket, error) {
	c.Log.Info("samsClient.GetAllPhenopackets called")

	exportUrl := fmt.Sprintf("%s%s?%s=1", c.BaseUrl, constvars.SamsExportAllPath, constvars.SamsQueryExportAll)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, exportUrl, nil)
	if err != nil {
		c.Log.Error("samsClient.GetAllPhenopackets error creating HTTP request",
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		c.Log.Error("samsClient.GetAllPhenopackets error sending HTTP request",
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= constvars.StatusBadRequest {
		c.Log.Error("samsClient.GetAllPhenopackets failed",
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrSamsExportFailed(resp.StatusCode, constvars.ResourcePhenopacket)
	}

	var packets []sams_dto.Phenopacket
	if err := json.NewDecoder(resp.Body).Decode(&packets); err != nil {
		c.Log.Error("samsClient.GetAllPhenopackets error decoding response",
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePhenopacket)
	}

	c.Log.Info("samsClient.GetAllPhenopackets succeeded",
		zap.Int(constvars.LoggingPacketCountKey, len(packets)),
	)
	return packets, nil
}

func (c *samsClient) GetPhenopacket(ctx context.Context, patientID string) (*sams_dto.Phenopacket, error) {
	c.Log.Info("samsClient.GetPhenopacket called",
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	exportUrl := fmt.Sprintf("%s%s?%s=%s", c.BaseUrl, constvars.SamsExportByIDPath, constvars.SamsQueryExternalID, url.QueryEscape(patientID))
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, exportUrl, nil)
	if err != nil {
		c.Log.Error("samsClient.GetPhenopacket error creating HTTP request",
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		c.Log.Error("samsClient.GetPhenopacket error sending HTTP request",
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= constvars.StatusBadRequest {
		c.Log.Error("samsClient.GetPhenopacket failed",
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrSamsExportFailed(resp.StatusCode, constvars.ResourcePhenopacket)
	}

	packet := new(sams_dto.Phenopacket)
	if err := json.NewDecoder(resp.Body).Decode(packet); err != nil {
		c.Log.Error("samsClient.GetPhenopacket error decoding response",
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePhenopacket)
	}

	// Guard against a misrouted or stale export: the record must belong to
	// the requested external id.
	if packet.Subject.ID != patientID {
		c.Log.Error("samsClient.GetPhenopacket subject id mismatch",
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.String(constvars.LoggingSubjectIDKey, packet.Subject.ID),
		)
		return nil, exceptions.ErrSubjectIDMismatch(packet.Subject.ID, patientID)
	}

	c.Log.Info("samsClient.GetPhenopacket succeeded",
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return packet, nil
}

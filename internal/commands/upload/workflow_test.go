package upload_test

import (
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/snyk/go-application-framework/pkg/analytics"
	"github.com/snyk/go-application-framework/pkg/configuration"
	"github.com/snyk/go-application-framework/pkg/mocks"
	"github.com/snyk/go-application-framework/pkg/ui"
	"github.com/snyk/go-application-framework/pkg/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	snyk_errors "github.com/snyk/error-catalog-golang-public/snyk_errors"

	"github.com/snyk/cli-extension-file-flows/internal/commands/upload"
	"github.com/snyk/cli-extension-file-flows/internal/constants"
	fferrors "github.com/snyk/cli-extension-file-flows/internal/errors"
	"github.com/snyk/cli-extension-file-flows/internal/flags"
	"github.com/snyk/cli-extension-file-flows/internal/util"
)

func TestRegisterWorkflows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEngine := mocks.NewMockEngine(ctrl)
	mockEngine.EXPECT().
		GetWorkflow(upload.WorkflowID).
		Times(1)
	mockEngine.EXPECT().
		Register(upload.WorkflowID, gomock.Any(), gomock.Any()).
		Times(1)

	err := upload.RegisterWorkflows(mockEngine)
	require.NoError(t, err)
}

func TestRegisterWorkflows_AlreadyRegistered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEngine := mocks.NewMockEngine(ctrl)
	mockEngine.EXPECT().
		GetWorkflow(upload.WorkflowID).
		Return(nil, true).
		Times(1)

	err := upload.RegisterWorkflows(mockEngine)
	require.ErrorContains(t, err, "already exists")
}

type receivedUpload struct {
	path     string
	fileName string
	username string
	fileType string
	month    string
	content  string
}

type uploadServer struct {
	mu       sync.Mutex
	received []receivedUpload
	server   *httptest.Server
}

func newUploadServer(t *testing.T) *uploadServer {
	t.Helper()

	s := &uploadServer{}
	mux := http.NewServeMux()
	mux.HandleFunc("/whoami", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"Jane Doe","phone_number":"+49 30 1234"}`))
	})
	mux.HandleFunc("/upload/", s.handleUpload(t))
	mux.HandleFunc("/upload", s.handleUpload(t))
	s.server = httptest.NewServer(mux)
	t.Cleanup(s.server.Close)
	return s
}

func (s *uploadServer) handleUpload(t *testing.T) http.HandlerFunc {
	t.Helper()

	return func(w http.ResponseWriter, r *http.Request) {
		_, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		rec := receivedUpload{path: r.URL.Path}
		reader := multipart.NewReader(r.Body, params["boundary"])
		form, err := reader.ReadForm(1 << 20)
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		rec.fileName = first(form.Value["fileName"])
		rec.username = first(form.Value["username"])
		rec.fileType = first(form.Value["fileType"])
		rec.month = first(form.Value["month"])
		if files := form.File["file"]; len(files) == 1 {
			fd, err := files[0].Open()
			if assert.NoError(t, err) {
				content, readErr := io.ReadAll(fd)
				assert.NoError(t, readErr)
				fd.Close()
				rec.content = string(content)
			}
		}

		s.mu.Lock()
		s.received = append(s.received, rec)
		s.mu.Unlock()

		if rec.fileName == "broken.csv" {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"disk full"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck // test server
		json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	}
}

func (s *uploadServer) uploads() []receivedUpload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]receivedUpload(nil), s.received...)
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func createFiles(t *testing.T, files ...util.LoadedFile) string {
	t.Helper()
	return util.CreateTmpFiles(t, files).Name()
}

func createMockInvocationCtx(t *testing.T, ctrl *gomock.Controller, cfg configuration.Configuration) workflow.InvocationContext {
	t.Helper()

	mockLogger := zerolog.Nop()

	icontext := mocks.NewMockInvocationContext(ctrl)
	icontext.EXPECT().GetConfiguration().Return(cfg).AnyTimes()
	icontext.EXPECT().GetEnhancedLogger().Return(&mockLogger).AnyTimes()
	icontext.EXPECT().GetUserInterface().Return(ui.DefaultUi()).AnyTimes()
	icontext.EXPECT().GetAnalytics().Return(analytics.New()).AnyTimes()
	icontext.EXPECT().GetWorkflowIdentifier().Return(upload.WorkflowID).AnyTimes()

	// Mock network access
	mockNetwork := mocks.NewMockNetworkAccess(ctrl)
	mockNetwork.EXPECT().GetHttpClient().Return(&http.Client{}).AnyTimes()
	icontext.EXPECT().GetNetworkAccess().Return(mockNetwork).AnyTimes()

	return icontext
}

func TestWorkflow_UploadsEveryFile(t *testing.T) {
	srv := newUploadServer(t)
	dir := createFiles(t,
		util.LoadedFile{Path: "people.csv", Content: "a,b"},
		util.LoadedFile{Path: "people.xlsx", Content: "xlsx-bytes"},
	)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := configuration.New()
	cfg.Set(configuration.INPUT_DIRECTORY, []string{
		filepath.Join(dir, "people.csv"),
		filepath.Join(dir, "people.xlsx"),
	})
	cfg.Set(flags.FlagFileType, "darwinbox")
	cfg.Set(flags.FlagMonth, "march")
	cfg.Set(flags.FlagUploadBaseURL, srv.server.URL)
	cfg.Set(flags.FlagIdentityURL, srv.server.URL+"/whoami")

	data, err := upload.Workflow(createMockInvocationCtx(t, ctrl, cfg), nil)
	require.NoError(t, err)
	assert.Empty(t, data)

	uploads := srv.uploads()
	require.Len(t, uploads, 2)
	assert.Equal(t, receivedUpload{
		path:     "/upload/darwinbox",
		fileName: "people.csv",
		username: "Jane Doe",
		fileType: "darwinbox",
		month:    "March",
		content:  "a,b",
	}, uploads[0])
	assert.Equal(t, "people.xlsx", uploads[1].fileName)
	assert.Equal(t, "xlsx-bytes", uploads[1].content)
}

func TestWorkflow_FailuresAreReported(t *testing.T) {
	srv := newUploadServer(t)
	dir := createFiles(t,
		util.LoadedFile{Path: "report.csv", Content: "a,b"},
		util.LoadedFile{Path: "report.exe", Content: "MZ"},
		util.LoadedFile{Path: "broken.csv", Content: "x"},
	)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := configuration.New()
	cfg.Set(configuration.INPUT_DIRECTORY, []string{
		filepath.Join(dir, "report.csv"),
		filepath.Join(dir, "report.exe"),
		filepath.Join(dir, "broken.csv"),
		filepath.Join(dir, "missing.csv"),
	})
	cfg.Set(flags.FlagUploadBaseURL, srv.server.URL)
	cfg.Set(constants.IdentityURLEnvVar, "")

	_, err := upload.Workflow(createMockInvocationCtx(t, ctrl, cfg), nil)

	var xerr *fferrors.FileFlowsExtensionError
	require.ErrorAs(t, err, &xerr)
	assert.Equal(t, "3 of 4 operations did not complete successfully.", err.Error())

	uploads := srv.uploads()
	require.Len(t, uploads, 2, "invalid and missing files never reach the server")
	assert.Equal(t, "/upload", uploads[0].path)
	assert.Equal(t, "Unknown", uploads[0].username)
	assert.Equal(t, "", uploads[0].fileType)
	assert.Equal(t, "broken.csv", uploads[1].fileName)
}

func TestWorkflow_NoFileSelected(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name  string
		setup func(cfg configuration.Configuration)
	}{
		{
			name: "input defaults to the working directory",
			setup: func(cfg configuration.Configuration) {
				cfg.AddDefaultValue(configuration.INPUT_DIRECTORY, configuration.StandardDefaultValueFunction(dir))
			},
		},
		{
			name: "empty input",
			setup: func(cfg configuration.Configuration) {
				cfg.Set(configuration.INPUT_DIRECTORY, []string{})
			},
		},
		{
			name: "lone directory",
			setup: func(cfg configuration.Configuration) {
				cfg.Set(configuration.INPUT_DIRECTORY, []string{dir})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newUploadServer(t)
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cfg := configuration.New()
			tt.setup(cfg)
			cfg.Set(flags.FlagUploadBaseURL, srv.server.URL)
			cfg.Set(flags.FlagIdentityURL, srv.server.URL+"/whoami")

			_, err := upload.Workflow(createMockInvocationCtx(t, ctrl, cfg), nil)

			var xerr *fferrors.FileFlowsExtensionError
			require.ErrorAs(t, err, &xerr)
			assert.ErrorContains(t, err, "Please select a file to upload")
			assert.Empty(t, srv.uploads())
		})
	}
}

func TestWorkflow_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(cfg configuration.Configuration)
		validate func(t *testing.T, err error)
	}{
		{
			name: "unknown file type",
			setup: func(cfg configuration.Configuration) {
				cfg.Set(configuration.INPUT_DIRECTORY, []string{"report.csv"})
				cfg.Set(flags.FlagUploadBaseURL, "https://files.example.com")
				cfg.Set(flags.FlagFileType, "payroll")
			},
			validate: func(t *testing.T, err error) {
				t.Helper()
				var catalogErr snyk_errors.Error
				require.ErrorAs(t, err, &catalogErr)
				assert.Contains(t, catalogErr.Detail, "'payroll'")
			},
		},
		{
			name: "no upload base url",
			setup: func(cfg configuration.Configuration) {
				cfg.Set(configuration.INPUT_DIRECTORY, []string{"report.csv"})
			},
			validate: func(t *testing.T, err error) {
				t.Helper()
				assert.ErrorContains(t, err, "--upload-base-url")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cfg := configuration.New()
			cfg.Set(constants.UploadBaseURLEnvVar, "")
			tt.setup(cfg)

			_, err := upload.Workflow(createMockInvocationCtx(t, ctrl, cfg), nil)

			require.Error(t, err)
			tt.validate(t, err)
		})
	}
}

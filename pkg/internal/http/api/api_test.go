package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math/big"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"git.solsynth.dev/hypernet/votechain/pkg/internal/chain"
	"git.solsynth.dev/hypernet/votechain/pkg/internal/content"
	"git.solsynth.dev/hypernet/votechain/pkg/internal/http/admin"
	"git.solsynth.dev/hypernet/votechain/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/votechain/pkg/internal/session"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCID = "bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi"

var (
	testAccount = common.HexToAddress("0x1111111111111111111111111111111111111111")
	pngHeader   = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}
)

type fakeVoting struct {
	chain.Voting
	deleteErr error
}

func (f *fakeVoting) VotingOrganizer(ctx context.Context) (common.Address, error) {
	return testAccount, nil
}

func (f *fakeVoting) Voters(ctx context.Context, voter common.Address) (chain.VoterRecord, error) {
	return chain.VoterRecord{Id: big.NewInt(1), Name: "Alice", VoterAddress: voter, Age: big.NewInt(30), Exists: true}, nil
}

func (f *fakeVoting) Groups(ctx context.Context, index *big.Int) (chain.GroupRecord, error) {
	if index.Int64() != 1 {
		return chain.GroupRecord{}, nil
	}
	return chain.GroupRecord{Id: big.NewInt(1), Name: "Board", Exists: true, StartTime: big.NewInt(1), EndTime: big.NewInt(2)}, nil
}

func (f *fakeVoting) DeleteGroup(ctx context.Context, groupID *big.Int) (*types.Transaction, error) {
	return nil, f.deleteErr
}

type fakeConnector struct {
	contract chain.Voting
}

func (f *fakeConnector) ConnectWithRetry(ctx context.Context) (*chain.Connection, error) {
	return &chain.Connection{Account: testAccount, Contract: f.contract}, nil
}

func (f *fakeConnector) BalanceOf(ctx context.Context, account string, backend chain.Backend) (string, bool) {
	return "2.0", true
}

type fakePinner struct {
	err error
}

func (f *fakePinner) Upload(ctx context.Context, name, groupID string, data []byte) (content.PinnedFile, error) {
	if f.err != nil {
		return content.PinnedFile{}, f.err
	}
	return content.PinnedFile{ID: "f1", Name: name, CID: testCID}, nil
}

func (f *fakePinner) FindByCID(ctx context.Context, cid string) ([]content.PinnedFile, error) {
	return nil, nil
}

func (f *fakePinner) Delete(ctx context.Context, ids []string) error {
	return nil
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{
		ErrorHandler: exts.ErrorHandler,
		JSONEncoder:  jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:  jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
	})
	MapControllers(app, "/api")
	admin.MapControllers(app, "/api/admin")

	content.C = content.NewService(&fakePinner{}, "https://gateway.example", "group-1")
	t.Cleanup(func() {
		content.C = nil
		session.C = nil
	})
	return app
}

func connect(t *testing.T, contract chain.Voting) {
	t.Helper()
	session.C = session.NewStore(&fakeConnector{contract: contract})
	require.NoError(t, session.C.Connect(context.Background()))
}

func multipartBody(t *testing.T, file []byte, fields map[string]string) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if file != nil {
		part, err := writer.CreateFormFile("file", "image.png")
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	for key, val := range fields {
		require.NoError(t, writer.WriteField(key, val))
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	if len(body) > 0 && body[0] == '{' {
		require.NoError(t, jsoniter.Unmarshal(body, &out))
	}
	return resp.StatusCode, out
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func TestUploadToPinata(t *testing.T) {
	app := newTestApp(t)

	cases := []struct {
		name    string
		file    []byte
		fields  map[string]string
		status  int
		message string
	}{
		{"NoFile", nil, map[string]string{"category": "voter"}, fiber.StatusBadRequest, "No file !"},
		{"NoCategory", pngHeader, nil, fiber.StatusBadRequest, "Provide Image Category !"},
		{"NotImage", []byte("hello world"), map[string]string{"category": "voter"}, fiber.StatusBadRequest, "Only valid image formats are allowed!"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body, contentType := multipartBody(t, tc.file, tc.fields)
			req := httptest.NewRequest(http.MethodPost, "/api/uploadToPinata", body)
			req.Header.Set(fiber.HeaderContentType, contentType)
			status, out := doRequest(t, app, req)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.message, out["error"])
		})
	}

	body, contentType := multipartBody(t, pngHeader, map[string]string{"category": "group"})
	req := httptest.NewRequest(http.MethodPost, "/api/uploadToPinata", body)
	req.Header.Set(fiber.HeaderContentType, contentType)
	status, out := doRequest(t, app, req)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, testCID, out["cid"])
	assert.Equal(t, "https://gateway.example/ipfs/"+testCID, out["url"])
}

func TestUploadToPinataFailure(t *testing.T) {
	app := newTestApp(t)
	content.C = content.NewService(&fakePinner{err: errors.New("unexpected status code: 500")}, "", "")

	body, contentType := multipartBody(t, pngHeader, map[string]string{"category": "voter"})
	req := httptest.NewRequest(http.MethodPost, "/api/uploadToPinata", body)
	req.Header.Set(fiber.HeaderContentType, contentType)
	status, out := doRequest(t, app, req)
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Failed to upload image !", out["error"])

	body, contentType = multipartBody(t, pngHeader, map[string]string{"category": "voter", "prevCID": testCID})
	req = httptest.NewRequest(http.MethodPost, "/api/updateToPinata", body)
	req.Header.Set(fiber.HeaderContentType, contentType)
	status, out = doRequest(t, app, req)
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Failed to update image !", out["error"])
}

func TestUpdateToPinataRequiresCID(t *testing.T) {
	app := newTestApp(t)

	body, contentType := multipartBody(t, pngHeader, map[string]string{"category": "voter", "prevURL": "https://gateway.example/ipfs/x"})
	req := httptest.NewRequest(http.MethodPost, "/api/updateToPinata", body)
	req.Header.Set(fiber.HeaderContentType, contentType)
	status, out := doRequest(t, app, req)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Provide Image CID !", out["error"])
}

type appTransport struct {
	app *fiber.App
}

func (v appTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return v.app.Test(req, -1)
}

func TestContentClient(t *testing.T) {
	app := newTestApp(t)
	client := content.NewClient("http://votechain.test")
	client.HTTP = &http.Client{Transport: appTransport{app}}

	_, err := client.Put(context.Background(), nil, "a.png", "voter")
	assert.ErrorIs(t, err, content.ErrNoFileSelected)
	_, err = client.Put(context.Background(), pngHeader, "a.png", "")
	assert.ErrorIs(t, err, content.ErrCategoryMissing)
	_, err = client.Update(context.Background(), pngHeader, "a.png", "voter", "")
	assert.ErrorIs(t, err, content.ErrCurrentCIDMissing)

	image, err := client.Put(context.Background(), pngHeader, "a.png", "candidate")
	require.NoError(t, err)
	assert.Equal(t, testCID, image.CID)

	_, err = client.Update(context.Background(), []byte("GIF"), "a.gif", "voter", testCID)
	require.Error(t, err)
	assert.Equal(t, "Only valid image formats are allowed!", err.Error())
}

func TestContentClientFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "<html>bad gateway</html>")
	}))
	defer server.Close()

	client := content.NewClient(server.URL)
	_, err := client.Put(context.Background(), pngHeader, "a.png", "voter")
	require.Error(t, err)
	assert.Equal(t, "Upload failed!", err.Error())

	_, err = client.Update(context.Background(), pngHeader, "a.png", "voter", testCID)
	require.Error(t, err)
	assert.Equal(t, "Update failed!", err.Error())
}

func TestNotConnected(t *testing.T) {
	app := newTestApp(t)
	session.C = session.NewStore(nil)

	status, out := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Connect your wallet first!", out["error"])

	status, _ = doRequest(t, app, jsonRequest(http.MethodPost, "/api/admin/owner", `{"address":"0x1111111111111111111111111111111111111111"}`))
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, out = doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/session", nil))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, false, out["connected"])
}

func TestSessionAndReads(t *testing.T) {
	app := newTestApp(t)
	connect(t, &fakeVoting{})

	status, out := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/session", nil))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, out["connected"])
	assert.Equal(t, "2.0", out["balance"])
	assert.Equal(t, true, out["is_organizer"])

	status, out = doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/owner", nil))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, testAccount.Hex(), out["owner"])

	status, out = doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/groups/1", nil))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Board", out["name"])

	status, out = doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/groups/abc", nil))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid group id!", out["error"])

	status, out = doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/profile", nil))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Alice", out["name"])

	status, out = doRequest(t, app, httptest.NewRequest(http.MethodPost, "/api/session/sidebar", nil))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, false, out["sidebar_open"])

	status, _ = doRequest(t, app, httptest.NewRequest(http.MethodPost, "/api/session/disconnect", nil))
	assert.Equal(t, fiber.StatusOK, status)
	assert.False(t, session.C.Snapshot().Connected)
}

func TestAdminWrites(t *testing.T) {
	app := newTestApp(t)
	contract := &fakeVoting{}
	connect(t, contract)

	status, out := doRequest(t, app, jsonRequest(http.MethodPost, "/api/admin/groups", `{"name":"Board","start_time":20,"end_time":"10"}`))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Start time must be before end time!", out["error"])

	status, out = doRequest(t, app, jsonRequest(http.MethodPost, "/api/admin/candidates", `{"name":"Bob","address":"0x2222222222222222222222222222222222222222","age":17}`))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Age must be at least 18!", out["error"])

	contract.deleteErr = errors.New("execution reverted: Only organizer can do it!")
	status, out = doRequest(t, app, httptest.NewRequest(http.MethodDelete, "/api/admin/groups/1", nil))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Only organizer can do it!", out["error"])

	contract.deleteErr = errors.New("dial tcp 127.0.0.1:8545: connect: connection refused")
	status, out = doRequest(t, app, httptest.NewRequest(http.MethodDelete, "/api/admin/groups/1", nil))
	assert.Equal(t, fiber.StatusBadGateway, status)
	assert.Equal(t, "Something went wrong while deleting group!", out["error"])
}

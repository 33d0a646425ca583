package server

import (
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/affinetool"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func TestSession(t *testing.T) {
	srv := httptest.NewServer(New(nil, nil))
	defer srv.Close()

	conn := dial(t, srv)
	defer conn.Close()

	// the pristine polygon is sent on connect
	var res Response
	require.NoError(t, conn.ReadJSON(&res))
	assert.NotEmpty(t, res.Session)
	assert.Equal(t, "reset", res.Intent)
	assert.Equal(t, affinetool.Canonical(), res.Vertices)
	session := res.Session

	hm := affinetool.Homogenize(affinetool.Canonical())

	require.NoError(t, conn.WriteJSON(Request{Intent: "scale-up"}))
	res = Response{}
	require.NoError(t, conn.ReadJSON(&res))
	assert.Equal(t, session, res.Session)
	assert.Equal(t, "scale-up", res.Intent)
	require.Len(t, res.Vertices, len(hm))
	expected := affinetool.Scale(1.5, 1.5, hm)
	for i := range expected {
		assert.InDelta(t, expected[i].X, res.Vertices[i].X, 1e-9)
		assert.InDelta(t, expected[i].Y, res.Vertices[i].Y, 1e-9)
	}

	// unknown intents are reported, the session continues
	require.NoError(t, conn.WriteJSON(Request{Intent: "shear"}))
	res = Response{}
	require.NoError(t, conn.ReadJSON(&res))
	assert.Contains(t, res.Error, "shear")
	assert.Empty(t, res.Vertices)

	require.NoError(t, conn.WriteJSON(Request{Intent: "translate"}))
	res = Response{}
	require.NoError(t, conn.ReadJSON(&res))
	assert.Equal(t, "translate", res.Intent)
	assert.InDelta(t, 0.0, res.Vertices[0].X, 1e-9)
	assert.InDelta(t, 3.5, res.Vertices[0].Y, 1e-9)
}

func TestSessionsAreIndependent(t *testing.T) {
	srv := httptest.NewServer(New(nil, nil))
	defer srv.Close()

	a := dial(t, srv)
	defer a.Close()
	b := dial(t, srv)
	defer b.Close()

	var resA, resB Response
	require.NoError(t, a.ReadJSON(&resA))
	require.NoError(t, b.ReadJSON(&resB))
	assert.NotEqual(t, resA.Session, resB.Session)

	require.NoError(t, a.WriteJSON(Request{Intent: "reflect"}))
	require.NoError(t, a.ReadJSON(&resA))
	assert.Equal(t, "reflect", resA.Intent)

	require.NoError(t, b.WriteJSON(Request{Intent: "reset"}))
	require.NoError(t, b.ReadJSON(&resB))
	assert.Equal(t, affinetool.Canonical(), resB.Vertices)
}

func TestRenderPNG(t *testing.T) {
	srv := httptest.NewServer(New(nil, nil))
	defer srv.Close()

	res, err := http.Get(srv.URL + "/render.png?intent=rotate")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "image/png", res.Header.Get("Content-Type"))
	_, err = png.Decode(res.Body)
	assert.NoError(t, err)

	res, err = http.Get(srv.URL + "/render.png?intent=bogus")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestIndex(t *testing.T) {
	srv := httptest.NewServer(New(nil, nil))
	defer srv.Close()

	res, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, err = http.Get(srv.URL + "/nope")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

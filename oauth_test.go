package woocommerce

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storekit/woocommerce-go/types"
)

func fixedSigner(key, secret string) *signer {
	s := newSigner(key, secret)
	s.nonce = func() string { return "fixednonce123" }
	s.now = func() time.Time { return time.Unix(1470000000, 0) }
	return s
}

func TestSigner_DeterministicSignature(t *testing.T) {
	s := fixedSigner("ck_test", "cs_test&")

	first := s.sign("GET", "http://store.example/wp-json/wc/v2/orders", types.NewParams("status", "all"))
	second := s.sign("GET", "http://store.example/wp-json/wc/v2/orders", types.NewParams("status", "all"))

	require.NotEmpty(t, first.Get("oauth_signature"))
	assert.Equal(t, first.Get("oauth_signature"), second.Get("oauth_signature"))
}

func TestSigner_SignatureVerifiable(t *testing.T) {
	s := fixedSigner("ck_test", "cs_test&")

	signed := s.sign("GET", "http://store.example/wp-json/wc/v2/orders", types.NewParams("status", "all"))

	// Recompute the canonical string by hand: parameters sorted by key,
	// each key and value percent-encoded, joined with &.
	sortedQuery := "oauth_consumer_key=ck_test" +
		"&oauth_nonce=fixednonce123" +
		"&oauth_signature_method=HMAC-SHA256" +
		"&oauth_timestamp=1470000000" +
		"&status=all"
	base := "GET&" +
		types.PercentEncode("http://store.example/wp-json/wc/v2/orders") + "&" +
		types.PercentEncode(sortedQuery)

	mac := hmac.New(sha256.New, []byte("cs_test&"))
	mac.Write([]byte(base))
	want := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	assert.Equal(t, want, signed.Get("oauth_signature"))
}

func TestSigner_FinalQueryKeepsInsertionOrder(t *testing.T) {
	s := fixedSigner("ck_test", "cs_test&")

	// "zzz" sorts after the oauth_* keys but was inserted first; the final
	// set must keep it first while the signature base string sorts it last.
	signed := s.sign("GET", "http://store.example/wp-json/wc/v3/products", types.NewParams("zzz", "1"))

	require.GreaterOrEqual(t, len(signed), 6)
	assert.Equal(t, "zzz", signed[0].Key)
	assert.Equal(t, "oauth_consumer_key", signed[1].Key)
	assert.Equal(t, "oauth_signature", signed[len(signed)-1].Key)
}

func TestSigner_DoesNotMutateCallerParams(t *testing.T) {
	s := fixedSigner("ck_test", "cs_test&")

	caller := types.NewParams("page", "2")
	_ = s.sign("GET", "http://store.example/wp-json/wc/v3/orders", caller)

	assert.Len(t, caller, 1)
	assert.False(t, caller.Has("oauth_signature"))
}

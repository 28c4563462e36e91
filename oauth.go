package woocommerce

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/storekit/woocommerce-go/types"
)

// signer computes OAuth-1.0a-style request signatures for plain-HTTP base
// URLs. nonce and now are injectable so tests can pin the signature.
type signer struct {
	consumerKey   string
	signingSecret string
	nonce         func() string
	now           func() time.Time
}

func newSigner(consumerKey, signingSecret string) *signer {
	return &signer{
		consumerKey:   consumerKey,
		signingSecret: signingSecret,
		nonce:         func() string { return ulid.Make().String() },
		now:           time.Now,
	}
}

// sign extends the caller's parameter set with the oauth_* parameters and
// appends the computed oauth_signature. The returned set keeps insertion
// order; only the signature base string is sorted.
func (s *signer) sign(method, requestURL string, params types.Params) types.Params {
	p := params.Clone()
	p.Set("oauth_consumer_key", s.consumerKey)
	p.Set("oauth_nonce", s.nonce())
	p.Set("oauth_signature_method", "HMAC-SHA256")
	p.Set("oauth_timestamp", strconv.FormatInt(s.now().UTC().Unix(), 10))

	base := signatureBase(method, requestURL, p)

	mac := hmac.New(sha256.New, []byte(s.signingSecret))
	mac.Write([]byte(base))
	signature := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	p.Set("oauth_signature", signature)
	return p
}

// signatureBase builds METHOD&enc(url)&enc(sortedQuery). The query half
// serializes every parameter as key=value joined by &, sorted
// lexicographically by key, keys and values percent-encoded per RFC 3986.
func signatureBase(method, requestURL string, params types.Params) string {
	sorted := params.Clone()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Key < sorted[j].Key
	})

	var q strings.Builder
	for i, kv := range sorted {
		if i > 0 {
			q.WriteByte('&')
		}
		q.WriteString(types.PercentEncode(kv.Key))
		q.WriteByte('=')
		q.WriteString(types.PercentEncode(kv.Value))
	}

	return strings.ToUpper(method) + "&" +
		types.PercentEncode(requestURL) + "&" +
		types.PercentEncode(q.String())
}

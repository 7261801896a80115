package s3

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// testClient creates a Client backed by a test HTTP server.
// The handler receives real S3 XML-protocol requests.
func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)

	client := s3.New(s3.Options{
		Region:       "us-east-1",
		BaseEndpoint: aws.String(server.URL),
		UsePathStyle: true,
		Credentials:  credentials.NewStaticCredentialsProvider("test-key", "test-secret", ""),
		HTTPClient: &http.Client{
			Transport: &http.Transport{},
		},
	})

	return &Client{s3: client, region: "us-east-1"}, server
}

// newTestRules returns a single-rule configuration for put tests.
func newTestRules() []s3types.LifecycleRule {
	return []s3types.LifecycleRule{
		{
			ID:     aws.String("delete-incomplete-mpu-7days"),
			Status: s3types.ExpirationStatusEnabled,
			Filter: &s3types.LifecycleRuleFilter{Prefix: aws.String("")},
			AbortIncompleteMultipartUpload: &s3types.AbortIncompleteMultipartUpload{
				DaysAfterInitiation: aws.Int32(7),
			},
		},
	}
}

// xmlResponse is a helper to write S3-style XML responses.
func xmlResponse(w http.ResponseWriter, statusCode int, body string) {
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(statusCode)
	_, _ = w.Write([]byte(body))
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts Options
	}{
		{
			name: "default credential chain",
			opts: Options{Region: "us-east-1"},
		},
		{
			name: "static credentials with custom endpoint",
			opts: Options{
				Region:    "us-east-1",
				Endpoint:  "http://localhost:4566",
				PathStyle: true,
				AccessKey: "test-key",
				SecretKey: "test-secret",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client, err := NewClient(context.Background(), tt.opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if client == nil {
				t.Fatal("expected non-nil client")
			}
			if client.Region() != tt.opts.Region {
				t.Errorf("expected region %s, got %s", tt.opts.Region, client.Region())
			}
		})
	}
}

func TestListBuckets(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		xmlResponse(w, 200, `<?xml version="1.0" encoding="UTF-8"?>
<ListAllMyBucketsResult>
  <Owner><ID>owner</ID></Owner>
  <Buckets>
    <Bucket><Name>alpha</Name></Bucket>
    <Bucket><Name>beta</Name></Bucket>
  </Buckets>
</ListAllMyBucketsResult>`)
	})

	client, server := testClient(t, handler)
	defer server.Close()

	names, err := client.ListBuckets(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 2 || names[0] != "alpha" || names[1] != "beta" {
		t.Errorf("unexpected bucket names: %v", names)
	}
}

func TestListBuckets_Paginated(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("continuation-token") == "next-page" {
			xmlResponse(w, 200, `<?xml version="1.0" encoding="UTF-8"?>
<ListAllMyBucketsResult>
  <Owner><ID>owner</ID></Owner>
  <Buckets>
    <Bucket><Name>gamma</Name></Bucket>
  </Buckets>
</ListAllMyBucketsResult>`)
			return
		}
		xmlResponse(w, 200, `<?xml version="1.0" encoding="UTF-8"?>
<ListAllMyBucketsResult>
  <Owner><ID>owner</ID></Owner>
  <Buckets>
    <Bucket><Name>alpha</Name></Bucket>
    <Bucket><Name>beta</Name></Bucket>
  </Buckets>
  <ContinuationToken>next-page</ContinuationToken>
</ListAllMyBucketsResult>`)
	})

	client, server := testClient(t, handler)
	defer server.Close()

	names, err := client.ListBuckets(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 3 {
		t.Fatalf("expected 3 buckets across pages, got %v", names)
	}
	if names[2] != "gamma" {
		t.Errorf("expected gamma from second page, got %s", names[2])
	}
}

func TestListBuckets_APIError(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		xmlResponse(w, 403, `<?xml version="1.0" encoding="UTF-8"?>
<Error><Code>AccessDenied</Code><Message>Access Denied</Message></Error>`)
	})

	client, server := testClient(t, handler)
	defer server.Close()

	_, err := client.ListBuckets(context.Background())
	if err == nil {
		t.Fatal("expected error but got nil")
	}
	if !strings.Contains(err.Error(), "failed to list buckets") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestBucketRegion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "regional bucket",
			body: `<?xml version="1.0" encoding="UTF-8"?>
<LocationConstraint xmlns="http://s3.amazonaws.com/doc/2006-03-01/">eu-west-1</LocationConstraint>`,
			want: "eu-west-1",
		},
		{
			name: "empty constraint means us-east-1",
			body: `<?xml version="1.0" encoding="UTF-8"?>
<LocationConstraint xmlns="http://s3.amazonaws.com/doc/2006-03-01/"/>`,
			want: "us-east-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if !r.URL.Query().Has("location") {
					xmlResponse(w, 400, "")
					return
				}
				xmlResponse(w, 200, tt.body)
			})

			client, server := testClient(t, handler)
			defer server.Close()

			region, err := client.BucketRegion(context.Background(), "test-bucket")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if region != tt.want {
				t.Errorf("expected region %s, got %s", tt.want, region)
			}
		})
	}
}

func TestLifecycleRules(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !r.URL.Query().Has("lifecycle") {
			xmlResponse(w, 400, "")
			return
		}
		xmlResponse(w, 200, `<?xml version="1.0" encoding="UTF-8"?>
<LifecycleConfiguration>
  <Rule>
    <ID>expire-old-logs</ID>
    <Status>Enabled</Status>
    <Filter><Prefix>logs/</Prefix></Filter>
    <Expiration><Days>90</Days></Expiration>
  </Rule>
  <Rule>
    <ID>delete-incomplete-mpu-7days</ID>
    <Status>Enabled</Status>
    <Filter><Prefix></Prefix></Filter>
    <AbortIncompleteMultipartUpload><DaysAfterInitiation>7</DaysAfterInitiation></AbortIncompleteMultipartUpload>
  </Rule>
</LifecycleConfiguration>`)
	})

	client, server := testClient(t, handler)
	defer server.Close()

	rules, err := client.LifecycleRules(context.Background(), "test-bucket")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(rules))
	}
	if rules[0].ID == nil || *rules[0].ID != "expire-old-logs" {
		t.Errorf("unexpected first rule: %+v", rules[0])
	}
	abort := rules[1].AbortIncompleteMultipartUpload
	if abort == nil || aws.ToInt32(abort.DaysAfterInitiation) != 7 {
		t.Errorf("unexpected abort action: %+v", abort)
	}
}

func TestLifecycleRules_NoConfiguration(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		xmlResponse(w, 404, `<?xml version="1.0" encoding="UTF-8"?>
<Error>
  <Code>NoSuchLifecycleConfiguration</Code>
  <Message>The lifecycle configuration does not exist</Message>
</Error>`)
	})

	client, server := testClient(t, handler)
	defer server.Close()

	rules, err := client.LifecycleRules(context.Background(), "test-bucket")
	if err != nil {
		t.Fatalf("expected no error for missing configuration, got %v", err)
	}
	if rules != nil {
		t.Errorf("expected nil rules, got %v", rules)
	}
}

func TestLifecycleRules_OtherError(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		xmlResponse(w, 403, `<?xml version="1.0" encoding="UTF-8"?>
<Error><Code>AccessDenied</Code><Message>Access Denied</Message></Error>`)
	})

	client, server := testClient(t, handler)
	defer server.Close()

	_, err := client.LifecycleRules(context.Background(), "test-bucket")
	if err == nil {
		t.Fatal("expected error but got nil")
	}
	if !strings.Contains(err.Error(), "test-bucket") {
		t.Errorf("error should name the bucket: %v", err)
	}
}

func TestPutLifecycleRules(t *testing.T) {
	t.Parallel()

	var body string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || !r.URL.Query().Has("lifecycle") {
			xmlResponse(w, 400, "")
			return
		}
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		w.WriteHeader(200)
	})

	client, server := testClient(t, handler)
	defer server.Close()

	err := client.PutLifecycleRules(context.Background(), "test-bucket", newTestRules())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(body, "<ID>delete-incomplete-mpu-7days</ID>") {
		t.Errorf("request body missing rule ID: %s", body)
	}
	if !strings.Contains(body, "<DaysAfterInitiation>7</DaysAfterInitiation>") {
		t.Errorf("request body missing abort action: %s", body)
	}
}

func TestPutLifecycleRules_Error(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		xmlResponse(w, 400, `<?xml version="1.0" encoding="UTF-8"?>
<Error><Code>MalformedXML</Code><Message>bad</Message></Error>`)
	})

	client, server := testClient(t, handler)
	defer server.Close()

	err := client.PutLifecycleRules(context.Background(), "test-bucket", newTestRules())
	if err == nil {
		t.Fatal("expected error but got nil")
	}
	if !strings.Contains(err.Error(), "failed to put lifecycle configuration") {
		t.Errorf("unexpected error: %v", err)
	}
}

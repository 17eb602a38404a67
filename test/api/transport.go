/*
Copyright 2026 the Mistral Harness Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/onsi/ginkgo/v2"
)

// maxLoggedBody caps per-direction body logging so CI logs stay readable.
const maxLoggedBody = 2048

// LoggingTransport records every interaction made through the generated
// client: method, path, status code or transport error, and elapsed time,
// with optionally dumped (truncated) bodies. It is a pure side channel: the
// response and error returned to the caller are exactly what the base
// transport produced.
type LoggingTransport struct {
	// Base is the underlying transport, http.DefaultTransport when nil.
	Base http.RoundTripper

	// Out is the log destination, GinkgoWriter when nil.
	Out io.Writer

	// LogBodies enables request/response body dumping.
	LogBodies bool
}

func (t *LoggingTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}

	return http.DefaultTransport
}

func (t *LoggingTransport) out() io.Writer {
	if t.Out != nil {
		return t.Out
	}

	return ginkgo.GinkgoWriter
}

// RoundTrip implements http.RoundTripper.
func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.LogBodies {
		// DumpRequestOut replaces the consumed body, so the request
		// proceeds unaltered.
		if dump, err := httputil.DumpRequestOut(req, true); err == nil {
			fmt.Fprintf(t.out(), ">>> %s %s\n%s\n", req.Method, req.URL.Path, truncateBody(string(dump)))
		}
	}

	start := time.Now()
	resp, err := t.base().RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		fmt.Fprintf(t.out(), "[%s %s] ERROR duration=%s error=%v\n", req.Method, req.URL.Path, duration, err)
		return resp, err
	}

	fmt.Fprintf(t.out(), "[%s %s] status=%d duration=%s\n", req.Method, req.URL.Path, resp.StatusCode, duration)

	if t.LogBodies {
		if dump, dumpErr := httputil.DumpResponse(resp, true); dumpErr == nil {
			fmt.Fprintf(t.out(), "<<< %s\n", truncateBody(string(dump)))
		}
	}

	return resp, nil
}

func truncateBody(body string) string {
	if len(body) <= maxLoggedBody {
		return body
	}

	return body[:maxLoggedBody] + fmt.Sprintf("... (%d bytes truncated)", len(body)-maxLoggedBody)
}

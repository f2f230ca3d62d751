package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/okian/gradecast/internal/backend"
	"github.com/okian/gradecast/internal/domain/model"
	"github.com/okian/gradecast/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLocalBackend(t *testing.T) {
	Convey("Given a local formula backend", t, func() {
		local := backend.NewLocal(scoring.NewHeuristicScorer())
		rec := model.StudentRecord{
			AttendanceRate:      0.95,
			PreviousGPA:         3.8,
			StudyHoursPerWeek:   22,
			CurrentAverageGrade: 90,
		}

		Convey("When predicting", func() {
			score, err := local.Predict(context.Background(), rec, "ignored prompt")

			Convey("Then it never fails and matches the formula", func() {
				So(err, ShouldBeNil)
				So(score, ShouldEqual, 89.2)
			})
		})

		Convey("Then it identifies itself", func() {
			So(local.Name(), ShouldEqual, "local-formula")
		})
	})
}

func TestRemoteBackend(t *testing.T) {
	Convey("Given a remote endpoint backend", t, func() {
		rec := model.StudentRecord{StudentID: "STU0001"}

		Convey("When the endpoint answers with a percentage", func() {
			var gotRequest map[string]any
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewDecoder(r.Body).Decode(&gotRequest)
				_ = json.NewEncoder(w).Encode([]map[string]string{
					{"generated_text": "Based on the data, Predicted Performance: 82.5% next semester."},
				})
			}))
			defer srv.Close()

			remote := backend.NewRemote(srv.URL)
			score, err := remote.Predict(context.Background(), rec, "the prompt")

			Convey("Then the first percent value is extracted", func() {
				So(err, ShouldBeNil)
				So(score, ShouldEqual, 82.5)
			})

			Convey("And the request carries the prompt and generation parameters", func() {
				So(gotRequest["inputs"], ShouldEqual, "the prompt")
				params, ok := gotRequest["parameters"].(map[string]any)
				So(ok, ShouldBeTrue)
				So(params["max_new_tokens"], ShouldEqual, 100)
				So(params["temperature"], ShouldEqual, 0.7)
				So(params["do_sample"], ShouldEqual, true)
			})
		})

		Convey("When the generated text has no percentage", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_ = json.NewEncoder(w).Encode([]map[string]string{
					{"generated_text": "The student will likely do well."},
				})
			}))
			defer srv.Close()

			remote := backend.NewRemote(srv.URL)
			_, err := remote.Predict(context.Background(), rec, "prompt")

			Convey("Then the no-percentage error surfaces", func() {
				So(err, ShouldWrap, backend.ErrNoPercentage)
			})
		})

		Convey("When the endpoint returns a non-200 status", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			}))
			defer srv.Close()

			remote := backend.NewRemote(srv.URL)
			_, err := remote.Predict(context.Background(), rec, "prompt")

			Convey("Then the status error surfaces", func() {
				So(err, ShouldWrap, backend.ErrBadStatus)
			})
		})

		Convey("When the response body is not JSON", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("not json"))
			}))
			defer srv.Close()

			remote := backend.NewRemote(srv.URL)
			_, err := remote.Predict(context.Background(), rec, "prompt")

			Convey("Then the decode error surfaces", func() {
				So(err, ShouldWrap, backend.ErrDecodeResponse)
			})
		})

		Convey("When the endpoint is unreachable", func() {
			remote := backend.NewRemote("http://127.0.0.1:1", backend.WithTimeout(200*time.Millisecond))
			_, err := remote.Predict(context.Background(), rec, "prompt")

			Convey("Then the transport error surfaces", func() {
				So(err, ShouldWrap, backend.ErrRemoteCall)
			})
		})

		Convey("When the endpoint hangs past the timeout", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-r.Context().Done():
				case <-time.After(2 * time.Second):
				}
			}))
			defer srv.Close()

			remote := backend.NewRemote(srv.URL, backend.WithTimeout(50*time.Millisecond))
			_, err := remote.Predict(context.Background(), rec, "prompt")

			Convey("Then the call fails instead of blocking", func() {
				So(err, ShouldWrap, backend.ErrRemoteCall)
			})
		})

		Convey("Then it identifies itself", func() {
			So(backend.NewRemote("http://example.com").Name(), ShouldEqual, "remote-endpoint")
		})
	})
}

package gcp

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStaticTokenSource(t *testing.T) {
	Convey("Given a static token source", t, func() {
		source := StaticTokenSource("test-token")

		Convey("It should always yield the same token", func() {
			token, err := source.Token(context.Background())
			So(err, ShouldBeNil)
			So(token, ShouldEqual, "test-token")
		})
	})
}

func TestCredentialError(t *testing.T) {
	Convey("Given a credential error wrapping a cause", t, func() {
		cause := errors.New("metadata server unreachable")
		err := &CredentialError{Err: cause}

		Convey("It should carry the cause in its message", func() {
			So(err.Error(), ShouldContainSubstring, "metadata server unreachable")
		})

		Convey("It should unwrap to the cause", func() {
			So(errors.Unwrap(err), ShouldEqual, cause)
		})
	})
}

package env

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")

	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestLoad(t *testing.T) {
	Convey("Given a missing env file", t, func() {
		store, err := Load(filepath.Join(t.TempDir(), "does-not-exist.env"))

		Convey("It should load as an empty store", func() {
			So(err, ShouldBeNil)
			So(store.Get("ANY_KEY"), ShouldEqual, "")
		})
	})

	Convey("Given an env file with comments and blank lines", t, func() {
		path := writeFile(t, "# project settings\nGOOGLE_CLOUD_PROJECT=my-project\n\nAGENTSPACE_APP_ID = app1\nNOT_A_PAIR\n")
		store, err := Load(path)

		Convey("It should parse KEY=VALUE lines only", func() {
			So(err, ShouldBeNil)
			So(store.Get("GOOGLE_CLOUD_PROJECT"), ShouldEqual, "my-project")
			So(store.Get("AGENTSPACE_APP_ID"), ShouldEqual, "app1")
		})

		Convey("It should report presence through Lookup", func() {
			_, ok := store.Lookup("GOOGLE_CLOUD_PROJECT")
			So(ok, ShouldBeTrue)

			_, ok = store.Lookup("NOT_A_PAIR")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestSet(t *testing.T) {
	Convey("Given a store loaded from a file with comments and blank lines", t, func() {
		path := writeFile(t, "# deployment outputs\nAGENT_ENGINE_RESOURCE_NAME=projects/123/locations/us-central1/reasoningEngines/9\n\nAGENTSPACE_AGENT_ID=old\n# trailing comment\n")
		store, err := Load(path)
		So(err, ShouldBeNil)

		Convey("When updating an existing key", func() {
			So(store.Set("AGENTSPACE_AGENT_ID", "xyz"), ShouldBeNil)

			data, err := os.ReadFile(path)
			So(err, ShouldBeNil)

			Convey("Then every other line is preserved verbatim and in order", func() {
				So(string(data), ShouldEqual, "# deployment outputs\nAGENT_ENGINE_RESOURCE_NAME=projects/123/locations/us-central1/reasoningEngines/9\n\nAGENTSPACE_AGENT_ID=xyz\n# trailing comment\n")
			})

			Convey("And the in-memory value is updated", func() {
				So(store.Get("AGENTSPACE_AGENT_ID"), ShouldEqual, "xyz")
			})
		})

		Convey("When setting a key that does not exist", func() {
			So(store.Set("AGENTSPACE_COLLECTION", "default_collection"), ShouldBeNil)

			data, err := os.ReadFile(path)
			So(err, ShouldBeNil)

			Convey("Then exactly one new line is appended", func() {
				So(string(data), ShouldEqual, "# deployment outputs\nAGENT_ENGINE_RESOURCE_NAME=projects/123/locations/us-central1/reasoningEngines/9\n\nAGENTSPACE_AGENT_ID=old\n# trailing comment\nAGENTSPACE_COLLECTION=default_collection\n")
			})
		})

		Convey("When clearing a key to the empty string", func() {
			So(store.Set("AGENTSPACE_AGENT_ID", ""), ShouldBeNil)

			data, err := os.ReadFile(path)
			So(err, ShouldBeNil)

			Convey("Then the key line is retained with an empty value", func() {
				So(string(data), ShouldContainSubstring, "\nAGENTSPACE_AGENT_ID=\n")
			})
		})
	})

	Convey("Given a store over a missing file", t, func() {
		path := filepath.Join(t.TempDir(), ".env")
		store, err := Load(path)
		So(err, ShouldBeNil)

		Convey("When setting a key", func() {
			So(store.Set("AGENTSPACE_AGENT_ID", "abc123"), ShouldBeNil)

			Convey("Then the file is created with that single line", func() {
				data, err := os.ReadFile(path)
				So(err, ShouldBeNil)
				So(string(data), ShouldEqual, "AGENTSPACE_AGENT_ID=abc123\n")
			})
		})
	})
}

func TestSnapshot(t *testing.T) {
	t.Setenv("AGENTLINK_TEST_ONLY_IN_PROCESS", "from-process")
	t.Setenv("AGENTLINK_TEST_SHADOWED", "from-process")

	Convey("Given a store with a key that shadows the process environment", t, func() {
		path := writeFile(t, "AGENTLINK_TEST_SHADOWED=from-file\n")
		store, err := Load(path)
		So(err, ShouldBeNil)

		snapshot := store.Snapshot()

		Convey("File values take precedence", func() {
			So(snapshot["AGENTLINK_TEST_SHADOWED"], ShouldEqual, "from-file")
		})

		Convey("Process-only values are visible", func() {
			So(snapshot["AGENTLINK_TEST_ONLY_IN_PROCESS"], ShouldEqual, "from-process")
		})
	})
}

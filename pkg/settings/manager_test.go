package settings_test

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/whoascope/whoascope/pkg/fonts"
	"github.com/whoascope/whoascope/pkg/settings"
)

// Mock platform implementation for testing
type mockPlatform struct {
	dir string
}

func (m *mockPlatform) ConfigDir() (string, error) {
	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return "", err
	}
	return m.dir, nil
}

type failingPlatform struct{}

func (p *failingPlatform) ConfigDir() (string, error) {
	return "", fmt.Errorf("no home directory")
}

var _ = Describe("Settings Manager", func() {
	var (
		tempDir  string
		defaults map[string]any
		manager  *settings.Manager
	)

	newManager := func() *settings.Manager {
		return settings.NewManagerWithPlatform(&mockPlatform{dir: tempDir}, defaults)
	}

	settingsFile := func() string {
		return filepath.Join(tempDir, "settings.json")
	}

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "settings-test-*")
		Expect(err).NotTo(HaveOccurred())

		defaults = settings.DefaultSettings(fonts.NewCatalog())
		manager = newManager()
	})

	AfterEach(func() {
		os.RemoveAll(tempDir)
	})

	Describe("defaults", func() {
		It("seeds font_name with the fallback when the catalog is empty", func() {
			Expect(defaults[settings.KeyFontName]).To(Equal(fonts.FallbackFontName))
		})

		It("seeds font_name with the first catalog entry when present", func() {
			fontsDir := filepath.Join(tempDir, "fonts")
			Expect(os.MkdirAll(fontsDir, 0755)).To(Succeed())
			path := filepath.Join(fontsDir, "Inter-Regular.ttf")
			Expect(os.WriteFile(path, []byte("fake"), 0644)).To(Succeed())

			seeded := settings.DefaultSettings(fonts.ScanDir(fontsDir))
			Expect(seeded[settings.KeyFontName]).To(Equal("Inter"))
		})

		It("resolves every default key after initializing against an empty store", func() {
			Expect(manager.Initialize()).To(Succeed())
			for key, value := range defaults {
				Expect(manager.Get(key)).To(Equal(value))
			}
		})
	})

	Describe("getting and setting values", func() {
		BeforeEach(func() {
			Expect(manager.Initialize()).To(Succeed())
		})

		It("round-trips a set value", func() {
			Expect(manager.Set(settings.KeyFontName, "Inter")).To(Succeed())
			Expect(manager.Get(settings.KeyFontName)).To(Equal("Inter"))
		})

		It("returns nil for unknown keys", func() {
			Expect(manager.Get("unknown_key")).To(BeNil())
		})

		It("prefers the caller fallback for unknown keys", func() {
			Expect(manager.Lookup("unknown_key", "fallback")).To(Equal("fallback"))
		})

		It("ignores the caller fallback when a value exists", func() {
			Expect(manager.Lookup(settings.KeyFontScale, 2.0)).To(Equal(1.0))
		})

		It("lists the recognized keys in sorted order", func() {
			Expect(manager.Keys()).To(Equal([]string{
				settings.KeyFontName,
				settings.KeyFontScale,
				settings.KeyLaunchMaximized,
			}))
		})
	})

	Describe("typed accessors", func() {
		BeforeEach(func() {
			Expect(manager.Initialize()).To(Succeed())
		})

		It("round-trips the font name", func() {
			Expect(manager.SetFontName("Some Font")).To(Succeed())
			Expect(manager.FontName()).To(Equal("Some Font"))
		})

		It("round-trips the font scale", func() {
			Expect(manager.SetFontScale(1.25)).To(Succeed())
			Expect(manager.FontScale()).To(Equal(1.25))
		})

		It("round-trips the launch-maximized flag", func() {
			Expect(manager.SetLaunchMaximized(true)).To(Succeed())
			Expect(manager.LaunchMaximized()).To(BeTrue())
		})

		It("defaults the font scale to 1.0", func() {
			Expect(manager.FontScale()).To(Equal(1.0))
		})
	})

	Describe("persistence", func() {
		It("survives a new manager instance on the same backing file", func() {
			Expect(manager.Initialize()).To(Succeed())
			Expect(manager.SetFontScale(1.5)).To(Succeed())
			Expect(manager.SetLaunchMaximized(true)).To(Succeed())

			reloaded := newManager()
			Expect(reloaded.Initialize()).To(Succeed())
			Expect(reloaded.FontScale()).To(Equal(1.5))
			Expect(reloaded.LaunchMaximized()).To(BeTrue())
		})

		It("writes each key wrapped in a value object", func() {
			Expect(manager.Initialize()).To(Succeed())
			Expect(manager.SetFontScale(1.5)).To(Succeed())

			raw, err := os.ReadFile(settingsFile())
			Expect(err).NotTo(HaveOccurred())

			var doc map[string]map[string]any
			Expect(json.Unmarshal(raw, &doc)).To(Succeed())
			Expect(doc[settings.KeyFontScale]).To(HaveKeyWithValue("value", 1.5))
		})

		It("persisted values survive re-initialization", func() {
			Expect(manager.Initialize()).To(Succeed())
			Expect(manager.SetFontName("Inter")).To(Succeed())

			Expect(manager.Initialize()).To(Succeed())
			Expect(manager.FontName()).To(Equal("Inter"))
		})

		It("skips persistence before Initialize but keeps the memory update", func() {
			Expect(manager.Set(settings.KeyFontName, "Inter")).To(Succeed())
			Expect(manager.Get(settings.KeyFontName)).To(Equal("Inter"))
			Expect(settingsFile()).NotTo(BeAnExistingFile())
		})

		It("surfaces write failures while keeping the memory update", func() {
			// A directory where the settings file should be makes every
			// write fail, regardless of process privileges.
			Expect(os.MkdirAll(settingsFile(), 0755)).To(Succeed())
			Expect(manager.Initialize()).To(Succeed())

			err := manager.Set(settings.KeyFontName, "Inter")
			Expect(err).To(HaveOccurred())
			Expect(manager.Get(settings.KeyFontName)).To(Equal("Inter"))
		})
	})

	Describe("recovering from bad data", func() {
		It("falls back to defaults when the document is corrupt", func() {
			Expect(os.WriteFile(settingsFile(), []byte("{not json"), 0644)).To(Succeed())

			Expect(manager.Initialize()).To(Succeed())
			Expect(manager.FontScale()).To(Equal(1.0))
			Expect(manager.FontName()).To(Equal(fonts.FallbackFontName))
		})

		It("falls back per key when a value field is missing", func() {
			doc := []byte(`{"font_scale": {}, "font_name": {"value": "Inter"}}`)
			Expect(os.WriteFile(settingsFile(), doc, 0644)).To(Succeed())

			Expect(manager.Initialize()).To(Succeed())
			Expect(manager.FontScale()).To(Equal(1.0))
			Expect(manager.FontName()).To(Equal("Inter"))
		})

		It("ignores stored keys outside the defaults", func() {
			doc := []byte(`{"stray": {"value": 42}}`)
			Expect(os.WriteFile(settingsFile(), doc, 0644)).To(Succeed())

			Expect(manager.Initialize()).To(Succeed())
			Expect(manager.Get("stray")).To(BeNil())
		})
	})

	Describe("lifecycle", func() {
		It("fails to initialize when the settings directory cannot be resolved", func() {
			broken := settings.NewManagerWithPlatform(&failingPlatform{}, defaults)
			Expect(broken.Initialize()).NotTo(Succeed())
		})

		It("reports the settings directory", func() {
			dir, err := manager.SettingsDirectory()
			Expect(err).NotTo(HaveOccurred())
			Expect(dir).To(Equal(tempDir))
		})
	})
})

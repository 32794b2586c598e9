//go:build integration

package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/unexpectedsense/omynix-waybar-manager/internal/cache"
	"github.com/unexpectedsense/omynix-waybar-manager/internal/domain"
	"github.com/unexpectedsense/omynix-waybar-manager/internal/infra"
	"github.com/unexpectedsense/omynix-waybar-manager/internal/template"
	"github.com/unexpectedsense/omynix-waybar-manager/internal/usecase"
	"github.com/unexpectedsense/omynix-waybar-manager/internal/wm"
)

const fixtureTemplate = "../fixtures/hyprland.jsonc"

// fakeRunner answers monitor queries with canned output and records spawns.
type fakeRunner struct {
	monitorOutput string
	spawned       [][]string
}

func (r *fakeRunner) Output(name string, args ...string) (string, error) {
	return r.monitorOutput, nil
}

func (r *fakeRunner) Spawn(name string, args ...string) error {
	r.spawned = append(r.spawned, append([]string{name}, args...))
	return nil
}

type fakeProcessManager struct {
	pids   []int
	killed []int
}

func (m *fakeProcessManager) IsProcessRunning(name string) bool { return false }
func (m *fakeProcessManager) FindByName(name string) ([]int, error) {
	return m.pids, nil
}
func (m *fakeProcessManager) Kill(pid int) error {
	m.killed = append(m.killed, pid)
	return nil
}

type fakeNotifier struct{ sent []string }

func (n *fakeNotifier) Notify(summary, body string) error {
	n.sent = append(n.sent, summary)
	return nil
}

type fakePrompter struct{ answer bool }

func (p *fakePrompter) Confirm(def bool) (bool, error)                   { return p.answer, nil }
func (p *fakePrompter) ConfirmWithTimeout(d time.Duration) (bool, error) { return p.answer, nil }

var _ = Describe("Generation Pipeline", func() {
	var (
		tmpDir string
		paths  *infra.Paths
	)

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "waybar-manager-integration-*")
		Expect(err).NotTo(HaveOccurred())

		paths = infra.NewPathsWithRoots(
			filepath.Join(tmpDir, "data"),
			filepath.Join(tmpDir, "waybar"),
		)

		fixture, err := os.ReadFile(fixtureTemplate)
		Expect(err).NotTo(HaveOccurred())

		tplPath := paths.TemplatesPath(domain.WMHyprland)
		Expect(os.MkdirAll(filepath.Dir(tplPath), 0755)).To(Succeed())
		Expect(os.WriteFile(tplPath, fixture, 0644)).To(Succeed())
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	Describe("Template to generated configs", func() {
		It("should write one config per monitor with the output injected", func() {
			templates, err := template.Load(paths.TemplatesPath(domain.WMHyprland))
			Expect(err).NotTo(HaveOccurred())
			Expect(templates).To(HaveLen(2))

			assignment := template.Assign("eDP-1", []string{"eDP-1", "HDMI-A-1"})
			generated, err := template.Generate(templates, assignment, domain.WMHyprland, paths)
			Expect(err).NotTo(HaveOccurred())
			Expect(generated).To(HaveLen(2))

			raw, err := os.ReadFile(paths.GeneratedConfigPath(domain.WMHyprland, "eDP-1", domain.Full))
			Expect(err).NotTo(HaveOccurred())

			var doc map[string]any
			Expect(json.Unmarshal(raw, &doc)).To(Succeed())
			Expect(doc["output"]).To(Equal("eDP-1"))
			Expect(doc["height"]).To(BeEquivalentTo(34))

			raw, err = os.ReadFile(paths.GeneratedConfigPath(domain.WMHyprland, "HDMI-A-1", domain.Simple))
			Expect(err).NotTo(HaveOccurred())
			Expect(json.Unmarshal(raw, &doc)).To(Succeed())
			Expect(doc["output"]).To(Equal("HDMI-A-1"))
			Expect(doc["height"]).To(BeEquivalentTo(26))
		})
	})

	Describe("Cache invalidation", func() {
		var store domain.CacheStore

		BeforeEach(func() {
			store = infra.NewCacheStoreWithPath(paths.CachePath())
		})

		It("should regenerate on first run and settle afterwards", func() {
			content, err := os.ReadFile(paths.TemplatesPath(domain.WMHyprland))
			Expect(err).NotTo(HaveOccurred())
			hash := cache.TemplateHash(content)
			monitors := []string{"eDP-1", "HDMI-A-1"}

			entry, err := store.Load()
			Expect(err).NotTo(HaveOccurred())
			Expect(entry).To(BeNil())
			Expect(cache.ShouldRegenerate(entry, hash, monitors, "eDP-1", true)).To(BeTrue())

			Expect(store.Save(domain.CacheEntry{
				TemplateHash:     hash,
				Monitors:         monitors,
				PreferredMonitor: "eDP-1",
				Timestamp:        cache.Timestamp(),
			})).To(Succeed())

			entry, err = store.Load()
			Expect(err).NotTo(HaveOccurred())
			Expect(cache.ShouldRegenerate(entry, hash, monitors, "eDP-1", true)).To(BeFalse())

			// Template edits, monitor changes, and preferred changes all invalidate.
			Expect(cache.ShouldRegenerate(entry, "deadbeefdeadbeef", monitors, "eDP-1", true)).To(BeTrue())
			Expect(cache.ShouldRegenerate(entry, hash, []string{"eDP-1"}, "eDP-1", true)).To(BeTrue())
			Expect(cache.ShouldRegenerate(entry, hash, monitors, "HDMI-A-1", true)).To(BeTrue())
			Expect(cache.ShouldRegenerate(entry, hash, monitors, "eDP-1", false)).To(BeTrue())
		})
	})

	Describe("Full launch run", func() {
		var (
			runner    *fakeRunner
			processes *fakeProcessManager
			notifier  *fakeNotifier
			launcher  *usecase.Launcher
		)

		BeforeEach(func() {
			runner = &fakeRunner{
				monitorOutput: "Monitor eDP-1 (ID 0):\nMonitor HDMI-A-1 (ID 1):",
			}
			processes = &fakeProcessManager{pids: []int{4242}}
			notifier = &fakeNotifier{}

			configs := infra.NewConfigStoreWithPath(paths.ConfigPath())
			_, err := configs.Init()
			Expect(err).NotTo(HaveOccurred())
			Expect(configs.Save(domain.DisplayConfig{
				Display: domain.Display{
					PreferredMonitor:  "eDP-1",
					AvailableMonitors: []string{"eDP-1", "HDMI-A-1"},
					Mode:              domain.ModeMultiple,
				},
			})).To(Succeed())

			detector := wm.NewDetectorWithEnv(func(key string) (string, bool) {
				return "sig", key == "HYPRLAND_INSTANCE_SIGNATURE"
			}, processes)

			launcher = usecase.NewLauncher(
				detector,
				runner,
				processes,
				configs,
				infra.NewCacheStoreWithPath(paths.CachePath()),
				notifier,
				&fakePrompter{},
				paths,
				zap.NewNop(),
				GinkgoWriter,
			)
		})

		It("should kill stale bars, generate configs and spawn one bar per monitor", func() {
			Expect(launcher.Run(usecase.LaunchOptions{})).To(Succeed())

			Expect(processes.killed).To(Equal([]int{4242}))
			Expect(runner.spawned).To(HaveLen(2))
			for _, call := range runner.spawned {
				Expect(call[0]).To(Equal("waybar"))
				Expect(call).To(HaveLen(5))
			}

			Expect(paths.GeneratedConfigPath(domain.WMHyprland, "eDP-1", domain.Full)).To(BeARegularFile())
			Expect(paths.GeneratedConfigPath(domain.WMHyprland, "HDMI-A-1", domain.Simple)).To(BeARegularFile())
			Expect(notifier.sent).To(BeEmpty())
		})

		It("should reuse the cache on a second run", func() {
			Expect(launcher.Run(usecase.LaunchOptions{})).To(Succeed())

			fullPath := paths.GeneratedConfigPath(domain.WMHyprland, "eDP-1", domain.Full)
			before, err := os.Stat(fullPath)
			Expect(err).NotTo(HaveOccurred())

			Expect(launcher.Run(usecase.LaunchOptions{})).To(Succeed())

			after, err := os.Stat(fullPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(after.ModTime()).To(Equal(before.ModTime()))
			Expect(runner.spawned).To(HaveLen(4))
		})
	})
})

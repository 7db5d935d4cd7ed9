package meta

import (
	"context"
	"fmt"
	"strings"

	"github.com/thoreinstein/ado/internal/errors"
	"github.com/thoreinstein/ado/internal/logging"
)

// Unknown marks a value the probe could not determine.
const Unknown = "unknown"

const bytesPerMB = 1024 * 1024

// SystemInfo is the payload of `ado meta system`. Zero numeric values mean
// the value could not be detected.
type SystemInfo struct {
	OS           string        `json:"os" yaml:"os"`
	Platform     string        `json:"platform" yaml:"platform"`
	Kernel       string        `json:"kernel" yaml:"kernel"`
	Architecture string        `json:"architecture" yaml:"architecture"`
	CPU          CPUInfo       `json:"cpu" yaml:"cpu"`
	Memory       MemoryInfo    `json:"memory" yaml:"memory"`
	Storage      []StorageInfo `json:"storage" yaml:"storage"`
	GPU          []GPUInfo     `json:"gpu" yaml:"gpu"`
	NPU          *NPUInfo      `json:"npu" yaml:"npu"`
}

// CPUInfo describes the first reported CPU.
type CPUInfo struct {
	Model        string  `json:"model" yaml:"model"`
	Vendor       string  `json:"vendor" yaml:"vendor"`
	Cores        int32   `json:"cores" yaml:"cores"`
	FrequencyMHz float64 `json:"frequency_mhz" yaml:"frequency_mhz"`
}

// MemoryInfo holds RAM and swap figures in megabytes.
type MemoryInfo struct {
	TotalMB     uint64  `json:"total_mb" yaml:"total_mb"`
	AvailableMB uint64  `json:"available_mb" yaml:"available_mb"`
	UsedMB      uint64  `json:"used_mb" yaml:"used_mb"`
	UsedPercent float64 `json:"used_percent" yaml:"used_percent"`
	SwapTotalMB uint64  `json:"swap_total_mb" yaml:"swap_total_mb"`
	SwapUsedMB  uint64  `json:"swap_used_mb" yaml:"swap_used_mb"`
}

// StorageInfo describes one mounted volume.
type StorageInfo struct {
	Device      string  `json:"device" yaml:"device"`
	Mountpoint  string  `json:"mountpoint" yaml:"mountpoint"`
	Filesystem  string  `json:"filesystem" yaml:"filesystem"`
	TotalMB     uint64  `json:"total_mb" yaml:"total_mb"`
	UsedMB      uint64  `json:"used_mb" yaml:"used_mb"`
	FreeMB      uint64  `json:"free_mb" yaml:"free_mb"`
	UsedPercent float64 `json:"used_percent" yaml:"used_percent"`
}

// GPU types.
const (
	GPUIntegrated = "integrated"
	GPUDiscrete   = "discrete"
)

// GPUInfo describes one graphics card.
type GPUInfo struct {
	Vendor string `json:"vendor" yaml:"vendor"`
	Model  string `json:"model" yaml:"model"`
	// Type is integrated, discrete, or unknown.
	Type string `json:"type" yaml:"type"`
}

// NPUInfo describes an inferred neural processing unit.
type NPUInfo struct {
	Detected bool   `json:"detected" yaml:"detected"`
	Type     string `json:"type" yaml:"type"`
	// InferenceMethod records how the NPU was detected (cpu_model today).
	InferenceMethod string `json:"inference_method" yaml:"inference_method"`
}

// pseudoFilesystems are never reported as storage.
var pseudoFilesystems = map[string]bool{
	"sysfs":    true,
	"proc":     true,
	"devtmpfs": true,
	"tmpfs":    true,
	"devpts":   true,
	"cgroup":   true,
	"cgroup2":  true,
	"overlay":  true,
	"squashfs": true,
}

// collector fills one section of SystemInfo.
type collector struct {
	name string
	run  func(ctx context.Context, p Probe, info *SystemInfo) error
}

var collectors = []collector{
	{name: "host", run: collectHost},
	{name: "cpu", run: collectCPU},
	{name: "memory", run: collectMemory},
	{name: "swap", run: collectSwap},
	{name: "storage", run: collectStorage},
	{name: "gpu", run: collectGPU},
}

// CollectSystemInfo describes the running machine. It never fails: each
// probe failure is logged at debug level and leaves its section unknown.
func CollectSystemInfo(ctx context.Context) SystemInfo {
	return CollectSystemInfoWith(ctx, HostProbe{})
}

// CollectSystemInfoWith is CollectSystemInfo using the given probe.
func CollectSystemInfoWith(ctx context.Context, p Probe) SystemInfo {
	logger := logging.FromContext(ctx)

	info := SystemInfo{
		OS:           Unknown,
		Platform:     Unknown,
		Kernel:       Unknown,
		Architecture: Unknown,
		CPU:          CPUInfo{Model: Unknown, Vendor: Unknown},
		Storage:      []StorageInfo{},
		GPU:          []GPUInfo{},
	}

	for _, c := range collectors {
		if err := c.run(ctx, p, &info); err != nil {
			logger.DebugContext(ctx, "system probe failed", "probe", c.name, "error", err)
		}
	}

	info.NPU = detectNPU(info.CPU.Model)
	if info.NPU != nil {
		logger.DebugContext(ctx, "inferred NPU", "type", info.NPU.Type, "cpu_model", info.CPU.Model)
	}
	return info
}

func collectHost(ctx context.Context, p Probe, info *SystemInfo) error {
	h, err := p.Host(ctx)
	if err != nil {
		return err
	}
	if h == nil {
		return errors.New("no host info")
	}
	info.OS = orUnknown(h.OS)
	info.Platform = orUnknown(strings.TrimSpace(h.Platform + " " + h.PlatformVersion))
	info.Kernel = orUnknown(h.KernelVersion)
	info.Architecture = orUnknown(h.KernelArch)
	return nil
}

func collectCPU(ctx context.Context, p Probe, info *SystemInfo) error {
	cpus, err := p.CPU(ctx)
	if err != nil {
		return err
	}
	if len(cpus) == 0 {
		return errors.New("no CPUs reported")
	}
	first := cpus[0]
	info.CPU = CPUInfo{
		Model:        orUnknown(first.ModelName),
		Vendor:       orUnknown(first.VendorID),
		Cores:        first.Cores,
		FrequencyMHz: first.Mhz,
	}
	return nil
}

func collectMemory(ctx context.Context, p Probe, info *SystemInfo) error {
	vm, err := p.VirtualMemory(ctx)
	if err != nil {
		return err
	}
	if vm == nil {
		return errors.New("no memory info")
	}
	info.Memory.TotalMB = vm.Total / bytesPerMB
	info.Memory.AvailableMB = vm.Available / bytesPerMB
	info.Memory.UsedMB = vm.Used / bytesPerMB
	info.Memory.UsedPercent = vm.UsedPercent
	return nil
}

func collectSwap(ctx context.Context, p Probe, info *SystemInfo) error {
	swap, err := p.SwapMemory(ctx)
	if err != nil {
		return err
	}
	if swap == nil {
		return errors.New("no swap info")
	}
	info.Memory.SwapTotalMB = swap.Total / bytesPerMB
	info.Memory.SwapUsedMB = swap.Used / bytesPerMB
	return nil
}

func collectStorage(ctx context.Context, p Probe, info *SystemInfo) error {
	partitions, err := p.Partitions(ctx)
	if err != nil {
		return err
	}

	logger := logging.FromContext(ctx)
	for _, part := range partitions {
		if pseudoFilesystems[part.Fstype] {
			continue
		}
		usage, err := p.Usage(ctx, part.Mountpoint)
		if err != nil || usage == nil {
			logger.DebugContext(ctx, "skipping volume", "mountpoint", part.Mountpoint, "error", err)
			continue
		}
		info.Storage = append(info.Storage, StorageInfo{
			Device:      part.Device,
			Mountpoint:  part.Mountpoint,
			Filesystem:  part.Fstype,
			TotalMB:     usage.Total / bytesPerMB,
			UsedMB:      usage.Used / bytesPerMB,
			FreeMB:      usage.Free / bytesPerMB,
			UsedPercent: usage.UsedPercent,
		})
	}
	return nil
}

func collectGPU(ctx context.Context, p Probe, info *SystemInfo) error {
	devices, err := p.GPUs(ctx)
	if err != nil {
		return err
	}
	for _, d := range devices {
		info.GPU = append(info.GPU, classifyGPU(d))
	}
	return nil
}

// classifyGPU normalises the vendor name and guesses the card type.
func classifyGPU(d GPUDevice) GPUInfo {
	g := GPUInfo{Vendor: d.Vendor, Model: d.Product, Type: Unknown}
	if g.Vendor == "" {
		g.Vendor = "Unknown"
	}
	if g.Model == "" {
		g.Model = "Unknown Model"
	}

	vendor := strings.ToLower(d.Vendor)
	switch {
	case strings.Contains(vendor, "nvidia"):
		g.Vendor, g.Type = "NVIDIA", GPUDiscrete
	case strings.Contains(vendor, "amd"), strings.Contains(vendor, "advanced micro devices"):
		g.Vendor, g.Type = "AMD", GPUDiscrete
	case strings.Contains(vendor, "intel"):
		g.Vendor, g.Type = "Intel", GPUIntegrated
		// Arc is Intel's discrete line.
		if strings.Contains(strings.ToLower(d.Product), "arc") {
			g.Type = GPUDiscrete
		}
	case strings.Contains(vendor, "apple"):
		g.Vendor, g.Type = "Apple", GPUIntegrated
	}
	return g
}

// detectNPU infers an NPU from CPU model keywords. Returns nil when none is recognised.
func detectNPU(cpuModel string) *NPUInfo {
	model := strings.ToLower(cpuModel)
	npu := func(kind string) *NPUInfo {
		return &NPUInfo{Detected: true, Type: kind, InferenceMethod: "cpu_model"}
	}

	for _, chip := range []string{"apple m1", "apple m2", "apple m3", "apple m4"} {
		if strings.Contains(model, chip) {
			return npu("Apple Neural Engine")
		}
	}
	if strings.Contains(model, "intel") && strings.Contains(model, "ultra") {
		return npu("Intel AI Boost")
	}
	if strings.Contains(model, "ryzen") && strings.Contains(model, "ai") {
		return npu("AMD Ryzen AI")
	}
	return nil
}

func orUnknown(s string) string {
	if s == "" {
		return Unknown
	}
	return s
}

// RenderText implements ui.TextRenderer.
func (s SystemInfo) RenderText() (string, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "OS: %s\n", s.OS)
	fmt.Fprintf(&sb, "Platform: %s\n", s.Platform)
	fmt.Fprintf(&sb, "Kernel: %s\n", s.Kernel)
	fmt.Fprintf(&sb, "Architecture: %s\n\n", s.Architecture)

	sb.WriteString("CPU:\n")
	fmt.Fprintf(&sb, "  Model: %s\n", s.CPU.Model)
	fmt.Fprintf(&sb, "  Vendor: %s\n", s.CPU.Vendor)
	fmt.Fprintf(&sb, "  Cores: %d\n", s.CPU.Cores)
	if s.CPU.FrequencyMHz > 0 {
		fmt.Fprintf(&sb, "  Frequency: %.0f MHz\n\n", s.CPU.FrequencyMHz)
	} else {
		sb.WriteString("  Frequency: unknown\n\n")
	}

	sb.WriteString("Memory:\n")
	fmt.Fprintf(&sb, "  Total: %d MB\n", s.Memory.TotalMB)
	fmt.Fprintf(&sb, "  Available: %d MB\n", s.Memory.AvailableMB)
	fmt.Fprintf(&sb, "  Used: %d MB (%.1f%%)\n", s.Memory.UsedMB, s.Memory.UsedPercent)
	if s.Memory.SwapTotalMB > 0 {
		fmt.Fprintf(&sb, "  Swap: %d MB total, %d MB used\n", s.Memory.SwapTotalMB, s.Memory.SwapUsedMB)
	}

	if len(s.Storage) > 0 {
		sb.WriteString("\nStorage:\n")
		for _, v := range s.Storage {
			fmt.Fprintf(&sb, "  %s: %d MB total, %d MB used (%.1f%%)\n", v.Mountpoint, v.TotalMB, v.UsedMB, v.UsedPercent)
		}
	}

	if len(s.GPU) > 0 {
		sb.WriteString("\nGPU:\n")
		for _, g := range s.GPU {
			fmt.Fprintf(&sb, "  %s %s (%s)\n", g.Vendor, g.Model, g.Type)
		}
	}

	if s.NPU != nil && s.NPU.Detected {
		sb.WriteString("\nNPU:\n")
		fmt.Fprintf(&sb, "  Type: %s\n", s.NPU.Type)
		fmt.Fprintf(&sb, "  Detection Method: %s\n", s.NPU.InferenceMethod)
	}

	return sb.String(), nil
}

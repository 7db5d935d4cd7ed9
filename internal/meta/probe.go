package meta

import (
	"context"

	"github.com/jaypipes/ghw"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// GPUDevice is a graphics card as reported by the PCI database.
type GPUDevice struct {
	Vendor  string
	Product string
}

// Probe reads raw host facts. HostProbe is the real implementation; tests
// substitute fakes.
type Probe interface {
	Host(ctx context.Context) (*host.InfoStat, error)
	CPU(ctx context.Context) ([]cpu.InfoStat, error)
	VirtualMemory(ctx context.Context) (*mem.VirtualMemoryStat, error)
	SwapMemory(ctx context.Context) (*mem.SwapMemoryStat, error)
	Partitions(ctx context.Context) ([]disk.PartitionStat, error)
	Usage(ctx context.Context, mountpoint string) (*disk.UsageStat, error)
	GPUs(ctx context.Context) ([]GPUDevice, error)
}

// HostProbe queries the running machine through gopsutil and ghw.
type HostProbe struct{}

var _ Probe = HostProbe{}

func (HostProbe) Host(ctx context.Context) (*host.InfoStat, error) {
	return host.InfoWithContext(ctx)
}

func (HostProbe) CPU(ctx context.Context) ([]cpu.InfoStat, error) {
	return cpu.InfoWithContext(ctx)
}

func (HostProbe) VirtualMemory(ctx context.Context) (*mem.VirtualMemoryStat, error) {
	return mem.VirtualMemoryWithContext(ctx)
}

func (HostProbe) SwapMemory(ctx context.Context) (*mem.SwapMemoryStat, error) {
	return mem.SwapMemoryWithContext(ctx)
}

// Partitions returns physical partitions only.
func (HostProbe) Partitions(ctx context.Context) ([]disk.PartitionStat, error) {
	return disk.PartitionsWithContext(ctx, false)
}

func (HostProbe) Usage(ctx context.Context, mountpoint string) (*disk.UsageStat, error) {
	return disk.UsageWithContext(ctx, mountpoint)
}

// GPUs lists graphics cards. ghw has no context support.
func (HostProbe) GPUs(context.Context) ([]GPUDevice, error) {
	info, err := ghw.GPU()
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, nil
	}

	devices := make([]GPUDevice, 0, len(info.GraphicsCards))
	for _, card := range info.GraphicsCards {
		if card == nil || card.DeviceInfo == nil {
			continue
		}
		var d GPUDevice
		if card.DeviceInfo.Vendor != nil {
			d.Vendor = card.DeviceInfo.Vendor.Name
		}
		if card.DeviceInfo.Product != nil {
			d.Product = card.DeviceInfo.Product.Name
		}
		devices = append(devices, d)
	}
	return devices, nil
}

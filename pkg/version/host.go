// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"runtime"
	"sync"

	"github.com/klauspost/cpuid/v2"
)

// Host describes the machine a comparison ran on. The host name is left out
// so reports can be shared.
type Host struct {
	OS     string `json:"os"`
	Kernel string `json:"kernel,omitempty"`
	Arch   string `json:"arch"`
	CPU    string `json:"cpu,omitempty"`
	Cores  int    `json:"cores"`
	// SIMD extensions the blake3 digests of the inputs can use.
	HashAccel []string `json:"hashAccel,omitempty"`
}

var host = sync.OnceValues(probeHost)

// HostInfo returns the host description, probed once per process.
func HostInfo() (*Host, error) {
	return host()
}

func probeHost() (*Host, error) {
	kernel, err := kernelRelease()
	if err != nil {
		return nil, err
	}
	h := &Host{
		OS:     runtime.GOOS,
		Kernel: kernel,
		Arch:   runtime.GOARCH,
		CPU:    cpuid.CPU.BrandName,
		Cores:  runtime.NumCPU(),
	}
	if cpuid.CPU.LogicalCores > 0 {
		h.Cores = cpuid.CPU.LogicalCores
	}
	for _, f := range []struct {
		id   cpuid.FeatureID
		name string
	}{
		{cpuid.SSE4, "sse4.1"},
		{cpuid.AVX2, "avx2"},
		{cpuid.AVX512F, "avx512f"},
		{cpuid.ASIMD, "neon"},
	} {
		if cpuid.CPU.Supports(f.id) {
			h.HashAccel = append(h.HashAccel, f.name)
		}
	}
	return h, nil
}

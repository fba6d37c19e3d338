// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"encoding/json"
	"fmt"

	"github.com/antgroup/tabdiff/pkg/version"
)

type Version struct {
	JSON bool `name:"json" help:"Print build and host details as JSON"`
}

type versionInfo struct {
	Version     string        `json:"version"`
	BuildCommit string        `json:"buildCommit,omitempty"`
	BuildTime   string        `json:"buildTime,omitempty"`
	Host        *version.Host `json:"host,omitempty"`
}

func (c *Version) Run(g *Globals) error {
	if !c.JSON {
		_, err := fmt.Fprintln(g.Stdout(), version.GetVersionString())
		return err
	}
	info := &versionInfo{
		Version:     version.GetVersion(),
		BuildCommit: version.GetBuildCommit(),
		BuildTime:   version.GetBuildTime(),
	}
	if h, err := version.HostInfo(); err == nil {
		info.Host = h
	} else {
		g.DbgPrint("host info: %v", err)
	}
	enc := json.NewEncoder(g.Stdout())
	enc.SetIndent("", "  ")
	return enc.Encode(info)
}

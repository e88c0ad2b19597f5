package ctl

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/clockrobustus/internal/config"
	"github.com/oshokin/clockrobustus/internal/domain/alarm"
	"github.com/oshokin/clockrobustus/internal/logger"
)

// alarmFile is the YAML document written by Export and read by Import.
type alarmFile struct {
	Alarms []alarm.Alarm `yaml:"alarms"`
}

// Export writes every stored alarm to a YAML file.
func (c *Controller) Export(ctx context.Context, path string) error {
	alarms, err := c.api.ListAlarms(ctx, c.actor)
	if err != nil {
		return err
	}

	if alarms == nil {
		alarms = []alarm.Alarm{}
	}

	data, err := yaml.Marshal(alarmFile{Alarms: alarms})
	if err != nil {
		return fmt.Errorf("marshal alarms: %w", err)
	}

	if err = os.WriteFile(path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	logger.InfoKV(ctx, "Alarms exported", "path", path, "count", len(alarms))

	return nil
}

// Import reads a YAML file and saves every alarm in it as a new alarm.
// With replace set, the stored alarms are deleted first.
// The file is validated in full before anything is changed.
func (c *Controller) Import(ctx context.Context, path string, replace bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var file alarmFile
	if err = yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	for i := range file.Alarms {
		if err = file.Alarms[i].Validate(); err != nil {
			return fmt.Errorf("alarm %d: %w", i+1, err)
		}
	}

	if replace {
		if err = c.removeAll(ctx); err != nil {
			return err
		}
	}

	for i := range file.Alarms {
		imported := file.Alarms[i]
		imported.ID = nil

		if err = c.api.UpsertAlarm(ctx, c.actor, &imported); err != nil {
			return fmt.Errorf("import alarm %d: %w", i+1, err)
		}
	}

	logger.InfoKV(ctx, "Alarms imported", "path", path, "count", len(file.Alarms), "replace", replace)

	return nil
}

func (c *Controller) removeAll(ctx context.Context) error {
	existing, err := c.api.ListAlarms(ctx, c.actor)
	if err != nil {
		return err
	}

	for i := range existing {
		if err = c.api.DeleteAlarm(ctx, c.actor, &existing[i]); err != nil {
			return err
		}
	}

	return nil
}

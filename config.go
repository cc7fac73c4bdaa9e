package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	ExportDirectory string
	FrameRate       int
	GridlineCount   int
}

func loadConfig() *Config {
	config := &Config{
		ExportDirectory: "",
		FrameRate:       defaultFrameRate,
		GridlineCount:   defaultGridlineCount,
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config
	}

	configPath := filepath.Join(homeDir, ".statchartrc")
	file, err := os.Open(configPath)
	if err != nil {
		return config
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "exportdirectory", "export_directory", "exportdir":
			if strings.HasPrefix(value, "~") {
				value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
			}
			if !filepath.IsAbs(value) {
				if absPath, err := filepath.Abs(value); err == nil {
					value = absPath
				}
			}
			config.ExportDirectory = value
		case "framerate", "frame_rate", "fps":
			if n, err := strconv.Atoi(value); err == nil && n >= 1 && n <= 120 {
				config.FrameRate = n
			}
		case "gridlinecount", "gridline_count", "gridlines":
			if n, err := strconv.Atoi(value); err == nil && n >= 2 && n <= 20 {
				config.GridlineCount = n
			}
		}
	}

	return config
}

func (c *Config) GetExportPath(filename string) string {
	if c.ExportDirectory == "" {
		return filename
	}
	os.MkdirAll(c.ExportDirectory, 0755)
	return filepath.Join(c.ExportDirectory, filename)
}

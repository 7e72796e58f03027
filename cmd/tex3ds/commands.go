package main

import (
	"os"

	"github.com/Chrs2021/citro3d"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envVarPrefix = "TEX3DS"

var (
	log        = logrus.New()
	StrictFlag bool
	SizeFlag   int64
)

var unpackCmd = &cobra.Command{
	Use:   "unpack [input] [output]",
	Short: "Decompress one Tex3DS payload into a raw file",
	Args:  cobra.ExactArgs(2),
	Run:   UnpackCommand,
}

var infoCmd = &cobra.Command{
	Use:   "info [input]",
	Short: "Print Tex3DS container metadata",
	Args:  cobra.ExactArgs(1),
	Run:   InfoCommand,
}

// initConfig loads the optional config file and environment overrides and
// applies the configured log level.
func initConfig() {
	if ConfigFlag != "" {
		viper.AddConfigPath(ConfigFlag)
	}
	viper.AddConfigPath(".")
	viper.SetConfigName("tex3ds")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix(envVarPrefix)
	viper.AutomaticEnv()

	viper.SetDefault("buffer_size", citro3d.DefaultBufferSize)
	viper.SetDefault("log_level", "info")

	if err := viper.ReadInConfig(); err != nil {
		log.Debugf("no config file loaded: %v", err)
	}

	level, err := logrus.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		log.Warnf("invalid log_level %q, using info", viper.GetString("log_level"))
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
}

func options() *citro3d.Options {
	opts := citro3d.DefaultOptions()
	opts.BufferSize = viper.GetInt("buffer_size")
	if StrictFlag {
		opts.SizePolicy = citro3d.SizeStrict
	}

	return opts
}

func UnpackCommand(cmd *cobra.Command, args []string) {
	initConfig()

	in, err := os.Open(args[0])
	if err != nil {
		log.Fatalf("opening input: %v", err)
	}
	defer in.Close()

	b, err := citro3d.NewBuffer(viper.GetInt("buffer_size"), citro3d.ReaderPull(in))
	if err != nil {
		log.Fatalf("creating buffer: %v", err)
	}

	var out []byte
	if SizeFlag > 0 {
		out = make([]byte, SizeFlag)
		err = citro3d.Decompress(b, out, options())
	} else {
		out, err = citro3d.DecompressAlloc(b, options())
	}
	if err != nil {
		log.Fatalf("decompressing %s: %v", args[0], err)
	}

	if err := os.WriteFile(args[1], out, 0644); err != nil {
		log.Fatalf("writing output: %v", err)
	}

	log.WithFields(logrus.Fields{
		"input":    args[0],
		"output":   args[1],
		"consumed": b.Total(),
		"size":     len(out),
	}).Info("payload unpacked")
}

func InfoCommand(cmd *cobra.Command, args []string) {
	initConfig()

	in, err := os.Open(args[0])
	if err != nil {
		log.Fatalf("opening input: %v", err)
	}
	defer in.Close()

	tex, consumed, err := citro3d.ImportTextureReader(in, options())
	if err != nil {
		log.Fatalf("importing %s: %v", args[0], err)
	}

	log.WithFields(logrus.Fields{
		"width":    tex.Width,
		"height":   tex.Height,
		"format":   tex.Format,
		"mipmaps":  tex.MipmapLevels,
		"cubemap":  tex.Cubemap,
		"subtex":   len(tex.SubTextures),
		"consumed": consumed,
	}).Info(args[0])

	for i := range tex.SubTextures {
		s := &tex.SubTextures[i]
		log.Infof("  subtexture %d: %dx%d rotated=%v", i, s.Width, s.Height, s.Rotated())
	}
}

package state

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"chartstyle/css"
)

// LoadStyles composes the stylesheet the program works with: the built-in
// chart stylesheet when enabled, then configured base and overrides, then
// extra files in the order given. Later sources win the cascade. Result is
// kept in Styles.
func (e *LocalEnv) LoadStyles(extra ...string) (*css.Stylesheet, error) {
	if e.Cfg == nil {
		return nil, fmt.Errorf("configuration is not loaded")
	}
	log := e.Log.Named("styles")

	sheet := css.New()
	if e.Cfg.Styles.UseDefault {
		sheet.Merge(css.Default())
		log.Debug("Using built-in stylesheet", zap.Int("rules", sheet.Len()))
	}

	sources := append(e.Cfg.Styles.Sources(), extra...)
	for i, src := range sources {
		name := fmt.Sprintf("styles/%02d-%s", i, filepath.Base(src))
		if err := e.Rpt.StoreCopy(name, src); err != nil {
			log.Debug("Unable to store stylesheet in report", zap.String("file", src), zap.Error(err))
		}
	}

	loader := css.NewLoader(e.Log, e.Cfg.Styles.ParseMode.ParserOptions()...)
	loaded, err := loader.LoadAll(sources...)
	sheet.Merge(loaded)
	if err != nil {
		return nil, fmt.Errorf("unable to load stylesheets: %w", err)
	}

	if e.Styles == nil {
		e.Rpt.StoreData("styles/composed.css", []byte(sheet.String()))
	}
	e.Styles = sheet

	log.Debug("Stylesheet composed",
		zap.Strings("sources", sources),
		zap.Int("rules", sheet.Len()),
		zap.Int("warnings", len(sheet.Warnings())))
	return sheet, nil
}

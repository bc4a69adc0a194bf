package processor

import (
	"context"
	"strings"

	"github.com/nguyentantai21042004/voc-pipeline/internal/logger"
	"github.com/nguyentantai21042004/voc-pipeline/pkg/executor"
)

// runHook runs the configured post-run command, typically a dashboard rebuild.
// The command sees the output directory and run id in its environment.
func (p *implProcessor) runHook(ctx context.Context, log logger.Logger, runID string) error {
	hook := p.cfg.Hooks.PostRun
	if hook.Command == "" {
		return nil
	}

	log.Info(ctx, "Running post-run hook: %s %s", hook.Command, strings.Join(hook.Args, " "))
	out, err := p.executor.Run(ctx, executor.Command{
		Name: hook.Command,
		Args: hook.Args,
		Dir:  hook.Dir,
		Env: []string{
			"VOC_OUTPUT=" + p.cfg.Paths.Output,
			"VOC_RUN_ID=" + runID,
		},
	})
	if err != nil {
		return err
	}
	if out = strings.TrimSpace(out); out != "" {
		log.Debug(ctx, "Hook output: %s", out)
	}
	return nil
}

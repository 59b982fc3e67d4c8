package cleanup

import "log/slog"

type job struct {
	name string
	f    func() error
}

var jobs []job

// Register queues a shutdown job. Jobs run in registration order on CleanUp.
func Register(name string, f func() error) {
	jobs = append(jobs, job{name: name, f: f})
}

func CleanUp() {
	for _, j := range jobs {
		if err := j.f(); err != nil {
			slog.Error("cleanup job failed", slog.String("job", j.name), slog.String("error", err.Error()))
			continue
		}
		slog.Info("cleanup job finished", slog.String("job", j.name))
	}
}

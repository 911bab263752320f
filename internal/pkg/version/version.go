// Package version 빌드 시점에 주입된 버전 메타데이터와 실행 환경 정보를 제공합니다.
//
// 버전, 커밋 해시, 빌드 시간 등은 링커 플래그(-ldflags)로 주입되며,
// 주입이 누락된 환경(go run 등)에서는 debug.ReadBuildInfo의 VCS 메타데이터로 보강합니다.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"sync/atomic"
)

const unknown = "unknown"

// globalBuildInfo init에서 한 번 채워지고 이후 읽기 전용으로 사용됩니다.
var globalBuildInfo atomic.Value

// readBuildInfo 테스트에서 교체 가능하도록 변수로 선언합니다.
var readBuildInfo = debug.ReadBuildInfo

// 컴파일 시점에 링커 플래그(ldflags)로 주입되는 값입니다.
// 애플리케이션 로직은 이 변수들에 직접 접근하지 않고 Get()을 사용합니다.
var (
	appVersion    = "" // 예: v1.0.1-155-gf25b8bf
	gitCommitHash = "" // 예: f25b8bf
	gitTreeState  = "" // clean 또는 dirty
	buildDate     = ""
	buildNumber   = "" // CI/CD 파이프라인 빌드 번호
)

func init() {
	bi := Info{
		Version:     strings.TrimSpace(appVersion),
		Commit:      strings.TrimSpace(gitCommitHash),
		BuildDate:   strings.TrimSpace(buildDate),
		BuildNumber: strings.TrimSpace(buildNumber),
		DirtyBuild:  strings.EqualFold(strings.TrimSpace(gitTreeState), "dirty"),
	}

	globalBuildInfo.Store(enrichBuildInfo(bi))
}

// Info 애플리케이션의 빌드 정보입니다. /version 엔드포인트와 로그 출력에 사용됩니다.
type Info struct {
	Version     string `json:"version"`
	Commit      string `json:"commit"`
	BuildDate   string `json:"build_date"`
	BuildNumber string `json:"build_number"`
	GoVersion   string `json:"go_version"`
	OS          string `json:"os"`
	Arch        string `json:"arch"`
	DirtyBuild  bool   `json:"dirty_build"`
}

// Get 애플리케이션의 빌드 정보를 반환합니다.
func Get() Info {
	bi := globalBuildInfo.Load()
	if bi == nil {
		return Info{Version: unknown, Commit: unknown, BuildDate: unknown, BuildNumber: "0"}
	}
	return bi.(Info)
}

// Version 애플리케이션의 버전 문자열을 반환합니다.
func Version() string {
	return Get().Version
}

// enrichBuildInfo 비어 있는 필드를 런타임 환경 값과 VCS 메타데이터로 채웁니다.
// ldflags 주입 여부와 무관하게 vcs.modified는 항상 반영합니다.
func enrichBuildInfo(bi Info) Info {
	if bi.GoVersion == "" {
		bi.GoVersion = runtime.Version()
	}
	if bi.OS == "" {
		bi.OS = runtime.GOOS
	}
	if bi.Arch == "" {
		bi.Arch = runtime.GOARCH
	}

	if val, ok := readBuildInfo(); ok {
		for _, setting := range val.Settings {
			switch setting.Key {
			case "vcs.revision":
				if bi.Commit == "" || bi.Commit == unknown || bi.Commit == "none" {
					bi.Commit = setting.Value
				}
			case "vcs.time":
				if bi.BuildDate == "" || bi.BuildDate == unknown {
					bi.BuildDate = setting.Value
				}
			case "vcs.modified":
				if setting.Value == "true" {
					bi.DirtyBuild = true
				}
			}
		}
		if bi.Version == "" && val.Main.Version != "(devel)" {
			bi.Version = val.Main.Version
		}
	}

	if bi.Version == "" {
		bi.Version = unknown
	}
	if bi.Commit == "" || bi.Commit == "none" {
		bi.Commit = unknown
	}

	return bi
}

// String 빌드 정보를 로그 한 줄로 요약해 반환합니다.
func (i Info) String() string {
	if i.Version == "" {
		return unknown
	}

	version := i.Version
	if i.DirtyBuild {
		version += "+dirty"
	}

	var details []string
	if i.Commit != "" && i.Commit != unknown {
		commit := i.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		details = append(details, "commit: "+commit)
	}
	if i.BuildNumber != "" {
		details = append(details, "build: "+i.BuildNumber)
	}
	if i.BuildDate != "" && i.BuildDate != unknown {
		details = append(details, "date: "+i.BuildDate)
	}
	if i.GoVersion != "" {
		details = append(details, "go_version: "+i.GoVersion)
	}

	if len(details) == 0 {
		return version
	}
	return fmt.Sprintf("%s (%s)", version, strings.Join(details, ", "))
}

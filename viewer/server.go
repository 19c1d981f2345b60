// Copyright 2026 EMFI Lab Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Serves pulse recordings for browsing.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	delayunit "github.com/HWS-XMS/DelayUnit"
	"github.com/HWS-XMS/DelayUnit/util"

	"github.com/fsnotify/fsnotify"
	"github.com/golang/glog"
	"github.com/labstack/echo"
)

var (
	portFlag = flag.Int("port", 8080, "Server HTTP port number")
	dirFlag  = flag.String("dir", "recordings", "Input recordings directory to display")
)

const (
	recExt = ".json.gz"
)

func recordingsDirectory() string {
	return *dirFlag
}

// A go-routine that waits for directory changes.
// Notifies changes by publishing a message via broker.
func watchDirectoryChanges(broker *util.Broker[fsnotify.Event]) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		glog.Errorf("NewWatcher failed: %v", err)
		return
	}
	defer watcher.Close()

	err = watcher.Add(recordingsDirectory())
	if err != nil {
		glog.Errorf("watcher.Add failed: %v", err)
		return
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				glog.Warning("watcher.Events is not ok. Aborting")
				return
			}
			glog.V(1).Infof("Watcher event: %v", event)
			if event.Op&fsnotify.Write == fsnotify.Write ||
				event.Op&fsnotify.Create == fsnotify.Create ||
				event.Op&fsnotify.Remove == fsnotify.Remove ||
				event.Op&fsnotify.Rename == fsnotify.Rename {
				if strings.HasSuffix(event.Name, recExt) {
					broker.Publish(event)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				glog.Warning("watcher.Errors is not ok. Aborting")
				return
			}
			glog.Warning("Watcher error:", err)
		}
	}
}

func waitForRecordings(c echo.Context, watcher *util.Broker[fsnotify.Event]) error {
	var wg sync.WaitGroup
	timedOut := time.NewTimer(5 * time.Minute)

	wg.Add(1)
	go func() {
		defer wg.Done()
		dirChanged := watcher.Subscribe()
		defer watcher.Unsubscribe(dirChanged)

		for {
			select {
			case <-timedOut.C:
				glog.V(1).Infof("Timed out")
				return
			case <-c.Request().Context().Done():
				glog.V(1).Infof("Client disconnected")
				return
			case <-dirChanged:
				glog.V(1).Infof("Received dir notification from broker")
				return
			}
		}
	}()

	wg.Wait()
	return nil
}

func loadRecording(filename string) (delayunit.Recording, error) {
	return delayunit.LoadRecording(path.Join(recordingsDirectory(), filename+recExt))
}

func main() {
	flag.Parse()
	defer glog.Flush()

	watchBroker := util.NewBroker[fsnotify.Event]()
	go watchBroker.Start()
	go watchDirectoryChanges(watchBroker)

	e := echo.New()

	// Static files.
	e.File("/", "viewer/index.html")
	e.File("/viewer.js", "viewer/viewer.js")
	e.File("/viewer.css", "viewer/viewer.css")

	// Returns list of recording files in directory.
	e.GET("/recordings", func(c echo.Context) error {
		if c.QueryParam("wait") != "false" {
			waitForRecordings(c, watchBroker)
		}
		files, err := filepath.Glob(path.Join(recordingsDirectory(), "*"+recExt))
		if err != nil {
			glog.Errorf("Glob failed: %v", err)
			return err
		}
		for i, f := range files {
			files[i] = strings.TrimSuffix(filepath.Base(f), recExt)
		}
		return c.JSON(http.StatusOK, files)
	})

	// Returns all pulse traces of a single recording.
	e.GET("/data/:recording", func(c echo.Context) error {
		rec, err := loadRecording(c.Param("recording"))
		if err != nil {
			glog.Errorf("Error loading recording file: %v", err)
			return err
		}
		return c.JSON(http.StatusOK, rec)
	})

	// Returns one pulse trace.
	e.GET("/data/:recording/:trace", func(c echo.Context) error {
		rec, err := loadRecording(c.Param("recording"))
		if err != nil {
			glog.Errorf("Error loading recording file: %v", err)
			return err
		}
		trace, err := strconv.Atoi(c.Param("trace"))
		if err != nil || trace < 0 || trace >= len(rec) {
			return c.String(http.StatusInternalServerError, "Invalid trace")
		}
		return c.JSON(http.StatusOK, rec[trace])
	})

	// Returns delay/width statistics of a recording.
	e.GET("/summary/:recording", func(c echo.Context) error {
		rec, err := loadRecording(c.Param("recording"))
		if err != nil {
			glog.Errorf("Error loading recording file: %v", err)
			return err
		}
		return c.JSON(http.StatusOK, rec.Summarize())
	})

	glog.Fatal(e.Start(fmt.Sprintf(":%d", *portFlag)))
}

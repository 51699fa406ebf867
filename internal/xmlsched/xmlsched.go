// Package xmlsched reads and writes the XML schedule format:
//
//	<?xml version="1.0"?>
//	<schedule id="lucia">
//	    <event>
//	        <name>standup</name>
//	        <time>
//	            <start-day>Monday</start-day>
//	            <start>0900</start>
//	            <end-day>Monday</end-day>
//	            <end>0930</end>
//	        </time>
//	        <location>
//	            <online>false</online>
//	            <place>room 2</place>
//	        </location>
//	        <users>
//	            <uid>lucia</uid>
//	            <uid>jonah</uid>
//	        </users>
//	    </event>
//	</schedule>
//
// Clock tokens are 4-digit 24-hour values, day names are capitalized, and the
// first uid is always the host.
package xmlsched

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"weekplanner/planner"
)

// Save writes the schedule of userID to w, ordered the way
// Directory.ScheduleOf orders it.
func Save(dir *planner.Directory, userID string, w io.Writer) error {
	entries, err := dir.ScheduleOf(userID)
	if err != nil {
		return err
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0"`)
	schedule := doc.CreateElement("schedule")
	schedule.CreateAttr("id", userID)

	for _, entry := range entries {
		event := schedule.CreateElement("event")
		event.CreateElement("name").SetText(entry.Name)

		timeEl := event.CreateElement("time")
		timeEl.CreateElement("start-day").SetText(entry.StartDay.String())
		timeEl.CreateElement("start").SetText(entry.StartTime.String())
		timeEl.CreateElement("end-day").SetText(entry.EndDay.String())
		timeEl.CreateElement("end").SetText(entry.EndTime.String())

		location := event.CreateElement("location")
		location.CreateElement("online").SetText(strconv.FormatBool(entry.IsOnline))
		location.CreateElement("place").SetText(entry.Location)

		users := event.CreateElement("users")
		users.CreateElement("uid").SetText(entry.HostID)
		for _, invitee := range entry.InviteeIDs {
			users.CreateElement("uid").SetText(invitee)
		}
	}

	doc.Indent(4)
	_, err = doc.WriteTo(w)
	return err
}

// SaveFile writes the schedule of userID to path, replacing any existing
// file.
func SaveFile(dir *planner.Directory, userID, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating schedule file: %w", err)
	}
	defer f.Close()
	if err := Save(dir, userID, f); err != nil {
		return err
	}
	return f.Close()
}

// Load parses one schedule document and replays it into the directory: the
// schedule owner and any unseen participant are registered just-in-time, and
// each event is created through Directory.CreateEvent acting as the owner.
// It returns the owner's user id.
func Load(dir *planner.Directory, r io.Reader) (string, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return "", fmt.Errorf("parsing schedule document: %w", err)
	}
	root := doc.SelectElement("schedule")
	if root == nil {
		return "", fmt.Errorf("document has no <schedule> element")
	}
	ownerID := strings.TrimSpace(root.SelectAttrValue("id", ""))
	if ownerID == "" {
		return "", fmt.Errorf("<schedule> element has no id attribute")
	}
	if err := registerIfAbsent(dir, ownerID); err != nil {
		return "", err
	}

	for _, eventEl := range root.SelectElements("event") {
		if err := loadEvent(dir, ownerID, eventEl); err != nil {
			return "", err
		}
	}
	return ownerID, nil
}

// LoadFile parses the schedule file at path into the directory and returns
// the owner's user id.
func LoadFile(dir *planner.Directory, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening schedule file: %w", err)
	}
	defer f.Close()
	return Load(dir, f)
}

func loadEvent(dir *planner.Directory, ownerID string, eventEl *etree.Element) error {
	name, err := childText(eventEl, "name")
	if err != nil {
		return err
	}

	timeEl := eventEl.SelectElement("time")
	if timeEl == nil {
		return fmt.Errorf("event %q has no <time> element", name)
	}
	startDayText, err := childText(timeEl, "start-day")
	if err != nil {
		return err
	}
	startDay, err := planner.ParseWeekday(startDayText)
	if err != nil {
		return err
	}
	endDayText, err := childText(timeEl, "end-day")
	if err != nil {
		return err
	}
	endDay, err := planner.ParseWeekday(endDayText)
	if err != nil {
		return err
	}
	startText, err := childText(timeEl, "start")
	if err != nil {
		return err
	}
	startTime, err := planner.ParseClock(startText)
	if err != nil {
		return err
	}
	endText, err := childText(timeEl, "end")
	if err != nil {
		return err
	}
	endTime, err := planner.ParseClock(endText)
	if err != nil {
		return err
	}

	locationEl := eventEl.SelectElement("location")
	if locationEl == nil {
		return fmt.Errorf("event %q has no <location> element", name)
	}
	onlineText, err := childText(locationEl, "online")
	if err != nil {
		return err
	}
	if !strings.EqualFold(onlineText, "true") && !strings.EqualFold(onlineText, "false") {
		return &planner.Error{
			Type:    planner.ErrInvalidField,
			Message: fmt.Sprintf("online token %q of event %q is not a boolean", onlineText, name),
		}
	}
	isOnline := strings.EqualFold(onlineText, "true")
	place, err := childText(locationEl, "place")
	if err != nil {
		return err
	}

	usersEl := eventEl.SelectElement("users")
	if usersEl == nil {
		return fmt.Errorf("event %q has no <users> element", name)
	}
	var uids []string
	for _, uidEl := range usersEl.SelectElements("uid") {
		uids = append(uids, strings.TrimSpace(uidEl.Text()))
	}
	if len(uids) == 0 {
		return fmt.Errorf("event %q lists no users", name)
	}
	hostID := uids[0]
	inviteeIDs := uids[1:]
	for _, id := range uids {
		if err := registerIfAbsent(dir, id); err != nil {
			return err
		}
	}

	_, err = dir.CreateEvent(ownerID, planner.EventDetails{
		Name:      name,
		Location:  place,
		IsOnline:  isOnline,
		StartDay:  startDay,
		EndDay:    endDay,
		StartTime: startTime,
		EndTime:   endTime,
	}, hostID, inviteeIDs)
	if err != nil {
		return fmt.Errorf("could not create event %q: %w", name, err)
	}
	return nil
}

func registerIfAbsent(dir *planner.Directory, id string) error {
	if dir.HasUser(id) {
		return nil
	}
	u, err := planner.NewUser(id)
	if err != nil {
		return err
	}
	return dir.RegisterUser(u)
}

func childText(parent *etree.Element, tag string) (string, error) {
	child := parent.SelectElement(tag)
	if child == nil {
		return "", fmt.Errorf("missing <%s> element", tag)
	}
	return strings.TrimSpace(child.Text()), nil
}

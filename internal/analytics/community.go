package analytics

import "sort"

// MemberOf reports whether a user belongs to a group through any of the
// three membership signals: the joined list, the admin list, or being the
// creator. The union matters — admins and creators are not always mirrored
// into the joined list.
func MemberOf(g Group, userID string) bool {
	for _, u := range g.JoinedUsers {
		if u == userID {
			return true
		}
	}
	for _, u := range g.AdminUsers {
		if u == userID {
			return true
		}
	}
	return g.CreatedBy == userID
}

// MostActiveGroup picks the group with the highest combined post+comment
// activity. Ties break by group id ascending so the result is deterministic.
// Groups with zero activity never win; no activity at all returns nil.
func MostActiveGroup(activity map[string]int, groups []GroupJoined) *ActiveGroup {
	nameByID := make(map[string]string, len(groups))
	for _, g := range groups {
		nameByID[g.GroupID] = g.GroupName
	}

	ids := make([]string, 0, len(activity))
	for id := range activity {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var best *ActiveGroup
	for _, id := range ids {
		count := activity[id]
		if count == 0 {
			continue
		}
		if best == nil || count > best.ActivityCount {
			name, ok := nameByID[id]
			if !ok {
				continue
			}
			best = &ActiveGroup{GroupID: id, GroupName: name, ActivityCount: count}
		}
	}
	return best
}

// SortPostsNewestFirst orders posts by timestamp descending. Posts without a
// timestamp sink to the end.
func SortPostsNewestFirst(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		ti, tj := posts[i].Timestamp, posts[j].Timestamp
		if ti == nil {
			return false
		}
		if tj == nil {
			return true
		}
		return ti.After(*tj)
	})
}

// SortCommentsNewestFirst orders comments by timestamp descending, nils last.
func SortCommentsNewestFirst(comments []Comment) {
	sort.SliceStable(comments, func(i, j int) bool {
		ti, tj := comments[i].Timestamp, comments[j].Timestamp
		if ti == nil {
			return false
		}
		if tj == nil {
			return true
		}
		return ti.After(*tj)
	})
}

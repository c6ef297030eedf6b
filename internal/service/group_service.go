package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/tontine/internal/changefeed"
	"github.com/mmynk/tontine/internal/errs"
	"github.com/mmynk/tontine/internal/middleware"
	"github.com/mmynk/tontine/internal/models"
	"github.com/mmynk/tontine/internal/roles"
	"github.com/mmynk/tontine/internal/storage"
	"github.com/mmynk/tontine/internal/validate"
	pb "github.com/mmynk/tontine/pkg/proto"
	"github.com/mmynk/tontine/pkg/proto/protoconnect"
)

// GroupService implements the Connect GroupService: groups, members and
// the caller's role.
type GroupService struct {
	store       storage.Store
	resolver    *roles.Resolver
	broker      *changefeed.Broker
	watchBuffer int
}

var _ protoconnect.GroupServiceHandler = (*GroupService)(nil)

// NewGroupService creates a GroupService. broker may be nil, in which case
// WatchGroup is unavailable.
func NewGroupService(store storage.Store, resolver *roles.Resolver, broker *changefeed.Broker, watchBuffer int) *GroupService {
	return &GroupService{store: store, resolver: resolver, broker: broker, watchBuffer: watchBuffer}
}

// CreateGroup creates a new group administered by the caller.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[pb.CreateGroupRequest]) (*connect.Response[pb.CreateGroupResponse], error) {
	const op = "GroupService.CreateGroup"
	caller := middleware.GetCaller(ctx)
	slog.Info("CreateGroup request received", "name", req.Msg.Name, "user_id", caller.UserID)

	if err := validate.Fields(op,
		validate.F("name", req.Msg.Name, "notblank,max=100"),
		validate.F("description", req.Msg.Description, "max=500"),
		validate.F("amount", req.Msg.Amount, "gt=0"),
		validate.F("frequency", req.Msg.Frequency, "frequency"),
		validate.F("start_date", req.Msg.StartDate, "date"),
		validate.F("end_date", req.Msg.EndDate, "omitempty,date"),
	); err != nil {
		return nil, toConnectError("CreateGroup", err)
	}
	startDate, err := validate.ParseDate(op, "start_date", req.Msg.StartDate)
	if err != nil {
		return nil, toConnectError("CreateGroup", err)
	}
	endDate, err := validate.ParseDate(op, "end_date", req.Msg.EndDate)
	if err != nil {
		return nil, toConnectError("CreateGroup", err)
	}
	if !endDate.IsZero() && !endDate.After(startDate) {
		return nil, toConnectError("CreateGroup", errs.Validation(op, "end_date", "must be after start_date"))
	}

	group := &models.Group{
		Name:        req.Msg.Name,
		Description: req.Msg.Description,
		Amount:      req.Msg.Amount,
		Frequency:   models.Frequency(req.Msg.Frequency),
		StartDate:   startDate,
		EndDate:     endDate,
		CreatedBy:   caller.UserID,
	}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		return nil, toConnectError("CreateGroup", errs.Upstream(op, err))
	}

	slog.Info("Group created", "group_id", group.ID)

	return connect.NewResponse(&pb.CreateGroupResponse{Group: toProtoGroup(group)}), nil
}

// GetGroup retrieves a group and the caller's role in it.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[pb.GetGroupRequest]) (*connect.Response[pb.GetGroupResponse], error) {
	const op = "GroupService.GetGroup"
	caller := middleware.GetCaller(ctx)
	slog.Info("GetGroup request received", "group_id", req.Msg.GroupId)

	if err := validate.Fields(op, validate.F("group_id", req.Msg.GroupId, "required")); err != nil {
		return nil, toConnectError("GetGroup", err)
	}
	role, err := s.resolver.Require(ctx, op, caller, req.Msg.GroupId, roles.AnyMember...)
	if err != nil {
		return nil, toConnectError("GetGroup", err)
	}
	group, err := s.store.GetGroup(ctx, req.Msg.GroupId)
	if err != nil {
		return nil, toConnectError("GetGroup", lookupError(op, "group", req.Msg.GroupId, err))
	}

	slog.Info("GetGroup successful", "group_id", group.ID, "role", role)

	return connect.NewResponse(&pb.GetGroupResponse{Group: toProtoGroup(group), Role: string(role)}), nil
}

// ListGroups returns the groups the caller administers or is an active member of.
func (s *GroupService) ListGroups(ctx context.Context, req *connect.Request[pb.ListGroupsRequest]) (*connect.Response[pb.ListGroupsResponse], error) {
	const op = "GroupService.ListGroups"
	caller := middleware.GetCaller(ctx)
	slog.Info("ListGroups request received", "user_id", caller.UserID)

	groups, err := s.store.ListGroupsForUser(ctx, caller.UserID, caller.Email)
	if err != nil {
		return nil, toConnectError("ListGroups", errs.Upstream(op, err))
	}

	out := make([]*pb.Group, len(groups))
	for i, g := range groups {
		out[i] = toProtoGroup(g)
	}

	slog.Info("ListGroups successful", "count", len(groups))

	return connect.NewResponse(&pb.ListGroupsResponse{Groups: out}), nil
}

// UpdateGroup replaces a group's editable fields. Admin only.
func (s *GroupService) UpdateGroup(ctx context.Context, req *connect.Request[pb.UpdateGroupRequest]) (*connect.Response[pb.UpdateGroupResponse], error) {
	const op = "GroupService.UpdateGroup"
	caller := middleware.GetCaller(ctx)
	slog.Info("UpdateGroup request received", "group_id", req.Msg.GroupId)

	if err := validate.Fields(op,
		validate.F("group_id", req.Msg.GroupId, "required"),
		validate.F("name", req.Msg.Name, "notblank,max=100"),
		validate.F("description", req.Msg.Description, "max=500"),
		validate.F("amount", req.Msg.Amount, "gt=0"),
		validate.F("frequency", req.Msg.Frequency, "frequency"),
		validate.F("end_date", req.Msg.EndDate, "omitempty,date"),
	); err != nil {
		return nil, toConnectError("UpdateGroup", err)
	}
	if _, err := s.resolver.Require(ctx, op, caller, req.Msg.GroupId, roles.AdminOnly...); err != nil {
		return nil, toConnectError("UpdateGroup", err)
	}

	group, err := s.store.GetGroup(ctx, req.Msg.GroupId)
	if err != nil {
		return nil, toConnectError("UpdateGroup", lookupError(op, "group", req.Msg.GroupId, err))
	}
	endDate, err := validate.ParseDate(op, "end_date", req.Msg.EndDate)
	if err != nil {
		return nil, toConnectError("UpdateGroup", err)
	}
	if !endDate.IsZero() && !endDate.After(group.StartDate) {
		return nil, toConnectError("UpdateGroup", errs.Validation(op, "end_date", "must be after start_date"))
	}

	group.Name = req.Msg.Name
	group.Description = req.Msg.Description
	group.Amount = req.Msg.Amount
	group.Frequency = models.Frequency(req.Msg.Frequency)
	group.EndDate = endDate

	if err := s.store.UpdateGroup(ctx, group); err != nil {
		return nil, toConnectError("UpdateGroup", lookupError(op, "group", group.ID, err))
	}

	slog.Info("Group updated", "group_id", group.ID)

	return connect.NewResponse(&pb.UpdateGroupResponse{Group: toProtoGroup(group)}), nil
}

// DeleteGroup removes a group with all its members, cycles and payments. Admin only.
func (s *GroupService) DeleteGroup(ctx context.Context, req *connect.Request[pb.DeleteGroupRequest]) (*connect.Response[pb.DeleteGroupResponse], error) {
	const op = "GroupService.DeleteGroup"
	caller := middleware.GetCaller(ctx)
	slog.Info("DeleteGroup request received", "group_id", req.Msg.GroupId)

	if err := validate.Fields(op, validate.F("group_id", req.Msg.GroupId, "required")); err != nil {
		return nil, toConnectError("DeleteGroup", err)
	}
	if _, err := s.resolver.Require(ctx, op, caller, req.Msg.GroupId, roles.AdminOnly...); err != nil {
		return nil, toConnectError("DeleteGroup", err)
	}
	if err := s.store.DeleteGroup(context.WithoutCancel(ctx), req.Msg.GroupId); err != nil {
		return nil, toConnectError("DeleteGroup", lookupError(op, "group", req.Msg.GroupId, err))
	}

	slog.Info("Group deleted", "group_id", req.Msg.GroupId)

	return connect.NewResponse(&pb.DeleteGroupResponse{}), nil
}

// AddMember adds a member to a group. Admin only.
func (s *GroupService) AddMember(ctx context.Context, req *connect.Request[pb.AddMemberRequest]) (*connect.Response[pb.AddMemberResponse], error) {
	const op = "GroupService.AddMember"
	caller := middleware.GetCaller(ctx)
	slog.Info("AddMember request received", "group_id", req.Msg.GroupId)

	if err := validate.Fields(op,
		validate.F("group_id", req.Msg.GroupId, "required"),
		validate.F("name", req.Msg.Name, "notblank,max=100"),
		validate.F("email", req.Msg.Email, "omitempty,email"),
		validate.F("phone", req.Msg.Phone, "max=32"),
	); err != nil {
		return nil, toConnectError("AddMember", err)
	}
	if _, err := s.resolver.Require(ctx, op, caller, req.Msg.GroupId, roles.AdminOnly...); err != nil {
		return nil, toConnectError("AddMember", err)
	}

	member := &models.Member{
		GroupID: req.Msg.GroupId,
		Name:    req.Msg.Name,
		Email:   req.Msg.Email,
		Phone:   req.Msg.Phone,
		Active:  true,
	}
	if err := s.store.CreateMember(ctx, member); err != nil {
		return nil, toConnectError("AddMember", memberWriteError(op, err))
	}

	slog.Info("Member added", "group_id", member.GroupID, "member_id", member.ID)

	return connect.NewResponse(&pb.AddMemberResponse{Member: toProtoMember(member)}), nil
}

// UpdateMember replaces a member's contact fields and optionally the active
// flag. Admin only.
func (s *GroupService) UpdateMember(ctx context.Context, req *connect.Request[pb.UpdateMemberRequest]) (*connect.Response[pb.UpdateMemberResponse], error) {
	const op = "GroupService.UpdateMember"
	caller := middleware.GetCaller(ctx)
	slog.Info("UpdateMember request received", "member_id", req.Msg.MemberId)

	if err := validate.Fields(op,
		validate.F("member_id", req.Msg.MemberId, "required"),
		validate.F("name", req.Msg.Name, "notblank,max=100"),
		validate.F("email", req.Msg.Email, "omitempty,email"),
		validate.F("phone", req.Msg.Phone, "max=32"),
	); err != nil {
		return nil, toConnectError("UpdateMember", err)
	}
	member, err := s.authorizedMember(ctx, op, caller, req.Msg.MemberId)
	if err != nil {
		return nil, toConnectError("UpdateMember", err)
	}

	member.Name = req.Msg.Name
	member.Email = req.Msg.Email
	member.Phone = req.Msg.Phone
	if req.Msg.Active != nil {
		member.Active = *req.Msg.Active
	}
	if err := s.store.UpdateMember(ctx, member); err != nil {
		return nil, toConnectError("UpdateMember", memberWriteError(op, err))
	}

	slog.Info("Member updated", "member_id", member.ID, "active", member.Active)

	return connect.NewResponse(&pb.UpdateMemberResponse{Member: toProtoMember(member)}), nil
}

// RemoveMember deletes a member and their payments. Admin only.
func (s *GroupService) RemoveMember(ctx context.Context, req *connect.Request[pb.RemoveMemberRequest]) (*connect.Response[pb.RemoveMemberResponse], error) {
	const op = "GroupService.RemoveMember"
	caller := middleware.GetCaller(ctx)
	slog.Info("RemoveMember request received", "member_id", req.Msg.MemberId)

	if err := validate.Fields(op, validate.F("member_id", req.Msg.MemberId, "required")); err != nil {
		return nil, toConnectError("RemoveMember", err)
	}
	member, err := s.authorizedMember(ctx, op, caller, req.Msg.MemberId)
	if err != nil {
		return nil, toConnectError("RemoveMember", err)
	}
	if err := s.store.DeleteMember(context.WithoutCancel(ctx), member.ID); err != nil {
		return nil, toConnectError("RemoveMember", lookupError(op, "member", member.ID, err))
	}

	slog.Info("Member removed", "group_id", member.GroupID, "member_id", member.ID)

	return connect.NewResponse(&pb.RemoveMemberResponse{}), nil
}

// ListMembers returns a group's members, active ones only unless asked otherwise.
func (s *GroupService) ListMembers(ctx context.Context, req *connect.Request[pb.ListMembersRequest]) (*connect.Response[pb.ListMembersResponse], error) {
	const op = "GroupService.ListMembers"
	caller := middleware.GetCaller(ctx)
	slog.Info("ListMembers request received", "group_id", req.Msg.GroupId)

	if err := validate.Fields(op, validate.F("group_id", req.Msg.GroupId, "required")); err != nil {
		return nil, toConnectError("ListMembers", err)
	}
	if _, err := s.resolver.Require(ctx, op, caller, req.Msg.GroupId, roles.AnyMember...); err != nil {
		return nil, toConnectError("ListMembers", err)
	}
	members, err := s.store.ListMembers(ctx, req.Msg.GroupId, !req.Msg.IncludeInactive)
	if err != nil {
		return nil, toConnectError("ListMembers", errs.Upstream(op, err))
	}

	out := make([]*pb.Member, len(members))
	for i, m := range members {
		out[i] = toProtoMember(m)
	}

	slog.Info("ListMembers successful", "group_id", req.Msg.GroupId, "count", len(members))

	return connect.NewResponse(&pb.ListMembersResponse{Members: out}), nil
}

// GetMyRole returns the caller's role in a group. A caller with no role
// gets "none" rather than an error.
func (s *GroupService) GetMyRole(ctx context.Context, req *connect.Request[pb.GetMyRoleRequest]) (*connect.Response[pb.GetMyRoleResponse], error) {
	const op = "GroupService.GetMyRole"
	caller := middleware.GetCaller(ctx)

	if err := validate.Fields(op, validate.F("group_id", req.Msg.GroupId, "required")); err != nil {
		return nil, toConnectError("GetMyRole", err)
	}
	role, err := s.resolver.ResolveStrict(ctx, caller, req.Msg.GroupId)
	if err != nil {
		if !errs.Is(err, errs.KindNotFound) {
			slog.Warn("Role resolution failed, denying", "group_id", req.Msg.GroupId, "error", err)
		}
		role = models.RoleNone
	}

	return connect.NewResponse(&pb.GetMyRoleResponse{Role: string(role)}), nil
}

// WatchGroup streams a hint for every change to the group until the client
// disconnects or the caller loses access.
func (s *GroupService) WatchGroup(ctx context.Context, req *connect.Request[pb.WatchGroupRequest], stream *connect.ServerStream[pb.WatchGroupResponse]) error {
	const op = "GroupService.WatchGroup"
	caller := middleware.GetCaller(ctx)
	slog.Info("WatchGroup request received", "group_id", req.Msg.GroupId, "user_id", caller.UserID)

	if s.broker == nil {
		return connect.NewError(connect.CodeUnimplemented, errors.New("change feed is not enabled"))
	}
	if err := validate.Fields(op, validate.F("group_id", req.Msg.GroupId, "required")); err != nil {
		return toConnectError("WatchGroup", err)
	}
	if _, err := s.resolver.Require(ctx, op, caller, req.Msg.GroupId, roles.AnyMember...); err != nil {
		return toConnectError("WatchGroup", err)
	}

	changes, cancel := s.broker.Subscribe(req.Msg.GroupId, s.watchBuffer)
	defer cancel()

	// Changes committed after the client sees this message are delivered.
	if err := stream.Send(&pb.WatchGroupResponse{GroupId: req.Msg.GroupId, Subscribed: true}); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-changes:
			if !ok {
				return nil
			}
			if err := stream.Send(&pb.WatchGroupResponse{
				Table:   string(change.Table),
				GroupId: change.GroupID,
				RowId:   change.RowID,
			}); err != nil {
				return err
			}
			// Membership or the group itself may have changed
			if _, err := s.resolver.Require(ctx, op, caller, req.Msg.GroupId, roles.AnyMember...); err != nil {
				return toConnectError("WatchGroup", err)
			}
		}
	}
}

func (s *GroupService) authorizedMember(ctx context.Context, op string, caller roles.Caller, memberID string) (*models.Member, error) {
	member, err := s.store.GetMember(ctx, memberID)
	if err != nil {
		return nil, lookupError(op, "member", memberID, err)
	}
	if _, err := s.resolver.Require(ctx, op, caller, member.GroupID, roles.AdminOnly...); err != nil {
		return nil, err
	}
	return member, nil
}

func memberWriteError(op string, err error) error {
	if errors.Is(err, storage.ErrDuplicate) {
		return errs.Validation(op, "email", "is already used by another member of this group")
	}
	return lookupError(op, "member", "", err)
}

func lookupError(op, entity, id string, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return errs.NotFound(op, entity, id)
	}
	return errs.Upstream(op, err)
}
